// Package menu implements the numbered interactive menu. It reads one line
// per answer, so it works the same on a terminal and on piped input.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/hance08/tally/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

const (
	ChoiceAddIncome  = "1"
	ChoiceAddExpense = "2"
	ChoiceList       = "3"
	ChoiceBalance    = "4"
	ChoiceExit       = "5"
)

// Ledger is the part of the transaction service the menu drives.
type Ledger interface {
	Record(ctx context.Context, kind ledger.Kind, amount decimal.Decimal, category, description string) (ledger.Transaction, error)
	List() ([]ledger.Transaction, bool)
	Balance() decimal.Decimal
}

type Menu struct {
	svc      Ledger
	in       *bufio.Scanner
	out      io.Writer
	currency string
	logger   *slog.Logger
}

type Option func(*Menu)

func WithCurrency(currency string) Option {
	return func(m *Menu) {
		m.currency = currency
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(m *Menu) {
		m.logger = logger
	}
}

func New(svc Ledger, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		svc:    svc,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run processes commands until the exit choice or end of input. It returns
// an error only when input cannot be read or a transaction cannot be saved.
func (m *Menu) Run(ctx context.Context) error {
	m.printBanner()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := m.ask("Enter your choice: ")
		if errors.Is(err, io.EOF) {
			m.println("Exiting...")
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case ChoiceAddIncome:
			if done, err := m.add(ctx, ledger.KindIncome); done || err != nil {
				return err
			}
		case ChoiceAddExpense:
			if done, err := m.add(ctx, ledger.KindExpense); done || err != nil {
				return err
			}
		case ChoiceList:
			if err := m.list(); err != nil {
				return err
			}
		case ChoiceBalance:
			views.RenderBalance(m.out, m.svc.Balance(), m.currency)
		case ChoiceExit:
			m.println("Exiting...")
			return nil
		default:
			pterm.Error.WithWriter(m.out).Println("Invalid choice, please try again.")
		}
	}
}

func (m *Menu) printBanner() {
	ui.PrintL1Title(m.out, "##### Personal Finance Tracker #####")
	m.println(ChoiceAddIncome + ". Add Income")
	m.println(ChoiceAddExpense + ". Add Expense")
	m.println(ChoiceList + ". View Transactions")
	m.println(ChoiceBalance + ". View Total Balance")
	m.println(ChoiceExit + ". Exit")
}

// add reads the details of one transaction and records it. done reports
// that input ended while the details were being read.
func (m *Menu) add(ctx context.Context, kind ledger.Kind) (done bool, err error) {
	amount, category, description, err := m.readDetails()
	if errors.Is(err, io.EOF) {
		m.println("Exiting...")
		return true, nil
	}
	if err != nil {
		return false, err
	}

	tx, err := m.svc.Record(ctx, kind, amount, category, description)
	if err != nil {
		return false, err
	}
	m.logger.Debug("recorded from menu", "id", tx.ID, "type", tx.Kind)

	pterm.Success.WithWriter(m.out).Printf("%s added successfully.\n", kind)
	return false, nil
}

func (m *Menu) readDetails() (decimal.Decimal, string, string, error) {
	var amount decimal.Decimal
	for {
		s, err := m.ask("Enter amount: ")
		if err != nil {
			return amount, "", "", err
		}
		amount, err = utils.ParseAmount(s)
		if err == nil {
			break
		}
		pterm.Error.WithWriter(m.out).Println("Please enter a valid number.")
	}

	category, err := m.ask("Enter category: ")
	if err != nil {
		return amount, "", "", err
	}

	description, err := m.ask("Enter description: ")
	if err != nil {
		return amount, "", "", err
	}

	return amount, category, description, nil
}

func (m *Menu) list() error {
	view := views.NewTransactionListView(m.out)

	txs, ok := m.svc.List()
	if !ok {
		view.RenderEmpty()
		return nil
	}
	return view.Render(views.NewTransactionListItems(txs, m.currency))
}

// ask prints prompt and returns the next trimmed input line.
func (m *Menu) ask(prompt string) (string, error) {
	m.println(prompt)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) println(s string) {
	pterm.Fprintln(m.out, s)
}
