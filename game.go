package lotto

import (
	"io"
)

// Game runs one console round: purchase, issue, draw input and results.
//
// Invalid answers are reported with an "[ERROR]" line and the same question
// is asked again. The round ends with ErrInputClosed once the input runs out.
type Game struct {
	machine *LottoMachine
	input   *InputView
	output  *OutputView
}

// NewGame creates a game that reads answers from r and writes everything to w.
func NewGame(machine *LottoMachine, r io.Reader, w io.Writer) *Game {
	return &Game{
		machine: machine,
		input:   NewInputView(r, w),
		output:  NewOutputView(w, machine.Config().Game),
	}
}

// Run plays a single round.
func (g *Game) Run() (*DrawReport, error) {
	purchase, err := readUntilValid(g, g.input.ReadPurchaseAmount, g.machine.Purchase)
	if err != nil {
		return nil, err
	}

	tickets, err := g.machine.Issue(purchase)
	if err != nil {
		g.output.PrintError(err)
		return nil, err
	}
	g.output.PrintPurchaseCount(tickets.Len())
	g.output.PrintTickets(tickets)

	winning, err := readUntilValid(g, g.input.ReadWinningNumbers, ParseWinningNumbers)
	if err != nil {
		return nil, err
	}

	bonus, err := readUntilValid(g, g.input.ReadBonusNumber, func(line string) (BonusNumber, error) {
		return ParseBonusNumber(line, winning)
	})
	if err != nil {
		return nil, err
	}

	report, err := g.machine.Draw(tickets, winning, bonus, purchase.Amount)
	if err != nil {
		g.output.PrintError(err)
		return nil, err
	}
	g.output.PrintReport(report)
	return report, nil
}

func readUntilValid[T any](g *Game, read func() (string, error), parse func(string) (T, error)) (T, error) {
	var zero T
	for {
		line, err := read()
		if err != nil {
			return zero, err
		}

		value, err := parse(line)
		if err == nil {
			return value, nil
		}
		g.output.PrintError(err)
		if !IsRetryableInput(err) {
			return zero, err
		}
	}
}
