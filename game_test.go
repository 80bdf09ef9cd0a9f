package lotto

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputView(t *testing.T) {
	var buf bytes.Buffer
	view := NewOutputView(&buf, nil)

	view.PrintPurchaseCount(2)
	view.PrintTickets(NewTickets(MustNumberSet(43, 42, 41, 23, 21, 8), MustNumberSet(1, 2, 3, 4, 5, 6)))
	view.PrintStatistics(WinningRecord{}.Add(TierFifth).Add(TierSecond).Add(TierSecond))
	view.PrintRateOfReturn(decimal.RequireFromString("62.5"))
	view.PrintError(ErrAmountTooSmall.WithDetails("got 0"))

	expected := strings.Join([]string{
		"",
		"2개를 구매했습니다.",
		"[8, 21, 23, 41, 42, 43]",
		"[1, 2, 3, 4, 5, 6]",
		"",
		"당첨 통계",
		"---",
		"3개 일치 (5,000원) - 1개",
		"4개 일치 (50,000원) - 0개",
		"5개 일치 (1,500,000원) - 0개",
		"5개 일치, 보너스 볼 일치 (30,000,000원) - 2개",
		"6개 일치 (2,000,000,000원) - 0개",
		"총 수익률은 62.5%입니다.",
		"[ERROR] 최소 구입 금액은 1,000원입니다.",
		"",
	}, "\n")
	assert.Equal(t, expected, buf.String())
}

func TestOutputView_PrintError(t *testing.T) {
	game := DefaultGameConfig()
	game.TicketPrice = 500
	game.MaxTickets = 100

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"not_a_number", ErrAmountNotNumber.WithDetails("abc"), "[ERROR] 구입 금액은 숫자여야 합니다.\n"},
		{"not_divisible", ErrAmountNotDivisible, "[ERROR] 구입 금액은 500원으로 나누어 떨어져야 합니다.\n"},
		{"too_small", ErrAmountTooSmall, "[ERROR] 최소 구입 금액은 500원입니다.\n"},
		{"too_large", ErrAmountTooLarge, "[ERROR] 최대 구입 금액은 50,000원입니다.\n"},
		{"count", ErrInvalidNumberCount, "[ERROR] 당첨 번호는 6개를 입력하셔야 합니다.\n"},
		{"out_of_range", ErrNumberOutOfRange, "[ERROR] 로또 번호는 1부터 45 사이의 숫자여야 합니다.\n"},
		{"wrapped", fmt.Errorf("read: %w", ErrBonusDuplicate), "[ERROR] 보너스 번호는 당첨 번호와 중복되지 않아야 합니다.\n"},
		{"no_console_text", ErrZeroAmountSpent, "[ERROR] amount spent must not be zero\n"},
		{"foreign", errors.New("disk full"), "[ERROR] disk full\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewOutputView(&buf, game).PrintError(tt.err)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestInputView(t *testing.T) {
	var prompts bytes.Buffer
	view := NewInputView(strings.NewReader(" 8000 \n1,2,3,4,5,6\n"), &prompts)

	amount, err := view.ReadPurchaseAmount()
	require.NoError(t, err)
	assert.Equal(t, "8000", amount)

	numbers, err := view.ReadWinningNumbers()
	require.NoError(t, err)
	assert.Equal(t, "1,2,3,4,5,6", numbers)

	_, err = view.ReadBonusNumber()
	assert.ErrorIs(t, err, ErrInputClosed)

	assert.Contains(t, prompts.String(), "구입금액을 입력해 주세요.")
	assert.Contains(t, prompts.String(), "당첨 번호를 입력해 주세요.")
	assert.Contains(t, prompts.String(), "보너스 번호를 입력해 주세요.")
}

func TestGame_Run(t *testing.T) {
	machine := newTestMachine(t, WithTicketGenerator(&sequenceGenerator{tickets: sampleTickets()}))

	input := strings.Join([]string{
		"abc",
		"1000.4",
		"8000",
		"1,2,3,4,5,5",
		"1,2,3,4,5,6",
		"6",
		"46",
		"7",
	}, "\n") + "\n"

	var out bytes.Buffer
	report, err := NewGame(machine, strings.NewReader(input), &out).Run()
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, 1, report.Record.Fifth())

	output := out.String()
	for _, line := range []string{
		"[ERROR] 구입 금액은 숫자여야 합니다.",
		"[ERROR] 구입 금액은 1,000원으로 나누어 떨어져야 합니다.",
		"8개를 구매했습니다.",
		"[8, 21, 23, 41, 42, 43]",
		"[1, 3, 5, 14, 22, 45]",
		"[ERROR] 당첨 번호는 중복되지 않아야 합니다.",
		"[ERROR] 보너스 번호는 당첨 번호와 중복되지 않아야 합니다.",
		"[ERROR] 보너스 번호는 1부터 45 사이의 숫자여야 합니다.",
		"3개 일치 (5,000원) - 1개",
		"6개 일치 (2,000,000,000원) - 0개",
		"총 수익률은 62.5%입니다.",
	} {
		assert.Contains(t, output, line)
	}
	assert.Equal(t, 5, strings.Count(output, "[ERROR]"))
}

func TestGame_CustomTicketPrice(t *testing.T) {
	config := testMachineConfig()
	config.Game.TicketPrice = 500
	machine, err := NewLottoMachine(config, WithTicketGenerator(&sequenceGenerator{tickets: sampleTickets()}))
	require.NoError(t, err)

	input := strings.Join([]string{"700", "0", "1000", "1,2,3,4,5,6", "7"}, "\n") + "\n"

	var out bytes.Buffer
	report, err := NewGame(machine, strings.NewReader(input), &out).Run()
	require.NoError(t, err)
	assert.Equal(t, int64(1000), report.AmountSpent)

	output := out.String()
	assert.Contains(t, output, "[ERROR] 구입 금액은 500원으로 나누어 떨어져야 합니다.")
	assert.Contains(t, output, "[ERROR] 최소 구입 금액은 500원입니다.")
	assert.NotContains(t, output, "1,000원으로")
	assert.Contains(t, output, "2개를 구매했습니다.")
}

func TestGame_InputClosed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no_input", ""},
		{"only_invalid_amounts", "abc\n500\n"},
		{"missing_bonus", "2000\n1,2,3,4,5,6\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			machine := newTestMachine(t, WithTicketGenerator(&sequenceGenerator{tickets: sampleTickets()}))

			var out bytes.Buffer
			report, err := NewGame(machine, strings.NewReader(tt.input), &out).Run()
			assert.ErrorIs(t, err, ErrInputClosed)
			assert.Nil(t, report)
		})
	}
}
