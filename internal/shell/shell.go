// Package shell runs the interactive banking menu on top of the services.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/constants"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/errhandler"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/ledger"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/service"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/store"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/ui/views"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/utils"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/validation"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
)

const (
	goBackHint      = "(or enter blank to go back to main menu):"
	transactionHint = "Please enter transaction details in <Date> <Account> <Type> <Amount> format"
	ruleHint        = "Please enter interest rules details in <Date> <RuleId> <Rate in %> format"
	statementHint   = "Please enter account and month to generate the statement <Account> <Year><Month>"

	msgInsufficientFunds = "Transaction failed due to insufficient balance."
	msgAccountNotFound   = "Account not found."
	msgInvalidChoice     = "Invalid choice. Please try again."
)

var menu = []MenuOption{
	{Code: constants.MenuTransactions, Label: "Input transactions"},
	{Code: constants.MenuInterestRule, Label: "Define interest rules"},
	{Code: constants.MenuStatement, Label: "Print statement"},
	{Code: constants.MenuQuit, Label: "Quit"},
}

type Shell struct {
	svc      *service.Service
	prompter Prompter
	out      io.Writer
	bankName string
	logger   *logrus.Logger
}

func New(svc *service.Service, prompter Prompter, out io.Writer, logger *logrus.Logger) *Shell {
	bankName := constants.DefaultBankName
	if svc.Config != nil && svc.Config.Bank.Name != "" {
		bankName = svc.Config.Bank.Name
	}
	return &Shell{
		svc:      svc,
		prompter: prompter,
		out:      out,
		bankName: bankName,
		logger:   logger,
	}
}

// Run loops over the main menu until the user quits or the input ends.
// Operation failures are printed and never end the loop; prompter errors
// other than io.EOF do.
func (s *Shell) Run(ctx context.Context) error {
	s.logger.WithField("bank", s.bankName).Debug("shell started")

	title := fmt.Sprintf("Welcome to %s! What would you like to do?", s.bankName)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := s.prompter.Menu(title, menu)
		if err != nil {
			return s.finish(err)
		}
		title = "Is there anything else you'd like to do?"

		switch strings.ToUpper(strings.TrimSpace(choice)) {
		case constants.MenuTransactions:
			err = s.inputTransactions(ctx)
		case constants.MenuInterestRule:
			err = s.defineRules(ctx)
		case constants.MenuStatement:
			err = s.printStatement()
		case constants.MenuQuit:
			s.farewell()
			return nil
		default:
			s.printError(msgInvalidChoice)
		}
		if err != nil {
			return s.finish(err)
		}
	}
}

func (s *Shell) finish(err error) error {
	if errors.Is(err, io.EOF) {
		s.farewell()
		return nil
	}
	return err
}

func (s *Shell) farewell() {
	fmt.Fprintf(s.out, "Thank you for banking with %s.\nHave a nice day!\n", s.bankName)
	s.logger.Debug("shell finished")
}

// inputTransactions keeps reading transactions until a blank line.
func (s *Shell) inputTransactions(ctx context.Context) error {
	prompt := transactionHint + "\n" + goBackHint
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.prompter.Line(prompt)
		if err != nil {
			return err
		}
		prompt = ""
		if strings.TrimSpace(line) == "" {
			return nil
		}

		in, err := validation.ParseTransactionLine(line)
		if err != nil {
			s.report(err)
			continue
		}

		acc, _, err := s.svc.Transaction.Record(in.AccountID, in.Date, in.Kind, in.Amount)
		if err != nil {
			s.report(err)
			continue
		}

		stmt, err := s.svc.Statement.Full(acc.ID)
		if err != nil {
			s.report(err)
			continue
		}
		s.renderStatement(stmt)
	}
}

// defineRules keeps reading rules until a blank line.
func (s *Shell) defineRules(ctx context.Context) error {
	prompt := ruleHint + "\n" + goBackHint
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.prompter.Line(prompt)
		if err != nil {
			return err
		}
		prompt = ""
		if strings.TrimSpace(line) == "" {
			return nil
		}

		in, err := validation.ParseRuleLine(line)
		if err != nil {
			s.report(err)
			continue
		}

		s.svc.Rule.Define(in.Date, in.ID, in.Rate)
		s.renderRules()
	}
}

func (s *Shell) printStatement() error {
	line, err := s.prompter.Line(statementHint + "\n" + goBackHint)
	if err != nil {
		return err
	}
	if strings.TrimSpace(line) == "" {
		return nil
	}

	in, err := validation.ParseStatementLine(line)
	if err != nil {
		s.report(err)
		return nil
	}

	stmt, err := s.svc.Statement.Monthly(in.AccountID, in.Period)
	if err != nil {
		s.report(err)
		return nil
	}
	s.renderStatement(stmt)
	return nil
}

func (s *Shell) renderStatement(stmt *service.Statement) {
	view := views.StatementView{AccountID: stmt.AccountID}
	for _, row := range stmt.Rows {
		view.Rows = append(view.Rows, views.StatementRowItem{
			Date:    ledger.FormatDate(row.Date),
			TxnID:   row.TxnID,
			Type:    row.Type,
			Amount:  utils.FormatFromCents(row.Amount),
			Balance: utils.FormatFromCents(row.Balance),
		})
	}

	out, err := views.RenderStatement(view)
	if err != nil {
		s.report(err)
		return
	}
	fmt.Fprint(s.out, out)
}

func (s *Shell) renderRules() {
	var items []views.RuleItem
	for _, r := range s.svc.Rule.GetAllRules() {
		items = append(items, views.RuleItem{
			Date: ledger.FormatDate(r.Date),
			ID:   r.ID,
			Rate: r.Rate.StringFixed(2),
		})
	}

	out, err := views.RenderRules(items)
	if err != nil {
		s.report(err)
		return
	}
	fmt.Fprint(s.out, out)
}

// report prints err as a user facing message.
func (s *Shell) report(err error) {
	switch {
	case errors.Is(err, ledger.ErrInsufficientFunds):
		s.printError(msgInsufficientFunds)
	case errors.Is(err, store.ErrAccountNotFound):
		s.printError(msgAccountNotFound)
	default:
		s.printError(errhandler.Capitalize(err.Error()) + ".")
	}
}

func (s *Shell) printError(msg string) {
	fmt.Fprint(s.out, pterm.Error.Sprintln(msg))
}
