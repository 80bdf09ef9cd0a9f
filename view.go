package lotto

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var tierLabels = map[PrizeTier]string{
	TierFifth:  "3개 일치",
	TierFourth: "4개 일치",
	TierThird:  "5개 일치",
	TierSecond: "5개 일치, 보너스 볼 일치",
	TierFirst:  "6개 일치",
}

// 控制台错误提示, 金额相关的提示带 %s 占位符
var consoleReasons = map[ErrorCode]string{
	ErrCodeAmountNotNumber:    "구입 금액은 숫자여야 합니다.",
	ErrCodeAmountNotDivisible: "구입 금액은 %s원으로 나누어 떨어져야 합니다.",
	ErrCodeAmountTooSmall:     "최소 구입 금액은 %s원입니다.",
	ErrCodeAmountTooLarge:     "최대 구입 금액은 %s원입니다.",
	ErrCodeInvalidNumberCount: "당첨 번호는 6개를 입력하셔야 합니다.",
	ErrCodeDuplicateNumber:    "당첨 번호는 중복되지 않아야 합니다.",
	ErrCodeNumberOutOfRange:   "로또 번호는 1부터 45 사이의 숫자여야 합니다.",
	ErrCodeBonusOutOfRange:    "보너스 번호는 1부터 45 사이의 숫자여야 합니다.",
	ErrCodeBonusDuplicate:     "보너스 번호는 당첨 번호와 중복되지 않아야 합니다.",
}

// OutputView renders purchases and results as console text.
type OutputView struct {
	w       io.Writer
	printer *message.Printer
	game    *GameConfig
}

// NewOutputView creates an OutputView writing to w. Amounts in error lines come
// from game; a nil game uses DefaultGameConfig().
func NewOutputView(w io.Writer, game *GameConfig) *OutputView {
	if game == nil {
		game = DefaultGameConfig()
	}
	return &OutputView{w: w, printer: message.NewPrinter(language.Korean), game: game}
}

// PrintPurchaseCount prints how many tickets were bought.
func (v *OutputView) PrintPurchaseCount(count int) {
	fmt.Fprintf(v.w, "\n%d개를 구매했습니다.\n", count)
}

// PrintTickets prints one ticket per line, numbers ascending.
func (v *OutputView) PrintTickets(tickets Tickets) {
	for _, ticket := range tickets {
		fmt.Fprintln(v.w, ticket.String())
	}
}

// PrintStatistics prints the per-tier counts, lowest tier first.
func (v *OutputView) PrintStatistics(record WinningRecord) {
	fmt.Fprintln(v.w, "\n당첨 통계")
	fmt.Fprintln(v.w, "---")
	for _, tier := range PrizeTiers {
		fmt.Fprintf(v.w, "%s (%s원) - %d개\n",
			tierLabels[tier], v.won(tier.Payout()), record.Count(tier))
	}
}

// PrintRateOfReturn prints the rate of return as a percentage.
func (v *OutputView) PrintRateOfReturn(rate decimal.Decimal) {
	fmt.Fprintf(v.w, "총 수익률은 %s%%입니다.\n", rate.String())
}

// PrintReport prints statistics followed by the rate of return.
func (v *OutputView) PrintReport(report *DrawReport) {
	v.PrintStatistics(report.Record)
	v.PrintRateOfReturn(report.RateOfReturn)
}

// PrintError prints the reason of err with the console error prefix.
func (v *OutputView) PrintError(err error) {
	fmt.Fprintf(v.w, "[ERROR] %s\n", v.reason(err))
}

func (v *OutputView) reason(err error) string {
	var lottoErr *LottoError
	if !errors.As(err, &lottoErr) {
		return err.Error()
	}

	tmpl, ok := consoleReasons[lottoErr.Code]
	if !ok {
		return lottoErr.Reason()
	}

	switch lottoErr.Code {
	case ErrCodeAmountNotDivisible, ErrCodeAmountTooSmall:
		return fmt.Sprintf(tmpl, v.won(v.game.TicketPrice))
	case ErrCodeAmountTooLarge:
		return fmt.Sprintf(tmpl, v.won(MaxPurchaseAmount(v.game.TicketPrice, v.game.MaxTickets)))
	default:
		return tmpl
	}
}

// won formats amount with digit grouping, e.g. 1,000.
func (v *OutputView) won(amount int64) string { return v.printer.Sprintf("%d", amount) }

// InputView reads answers line by line.
type InputView struct {
	scanner *bufio.Scanner
	w       io.Writer
}

// NewInputView creates an InputView reading from r and prompting on w.
func NewInputView(r io.Reader, w io.Writer) *InputView {
	return &InputView{scanner: bufio.NewScanner(r), w: w}
}

// ReadPurchaseAmount prompts for and reads the purchase amount.
func (v *InputView) ReadPurchaseAmount() (string, error) {
	return v.prompt("구입금액을 입력해 주세요.")
}

// ReadWinningNumbers prompts for and reads the winning numbers.
func (v *InputView) ReadWinningNumbers() (string, error) {
	return v.prompt("\n당첨 번호를 입력해 주세요.")
}

// ReadBonusNumber prompts for and reads the bonus number.
func (v *InputView) ReadBonusNumber() (string, error) {
	return v.prompt("\n보너스 번호를 입력해 주세요.")
}

func (v *InputView) prompt(question string) (string, error) {
	fmt.Fprintln(v.w, question)
	if !v.scanner.Scan() {
		if err := v.scanner.Err(); err != nil {
			return "", ErrInputClosed.WithCause(err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(v.scanner.Text()), nil
}
