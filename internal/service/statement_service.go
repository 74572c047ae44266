package service

import (
	"cloud.google.com/go/civil"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/constants"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/interest"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/ledger"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/rates"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/store"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// StatementRow is one printed line: a transaction, or the interest summary
// with an empty TxnID.
type StatementRow struct {
	Date    civil.Date
	TxnID   string
	Type    string
	Amount  int64
	Balance int64
}

type Statement struct {
	AccountID string
	// Period is nil for a full-history statement.
	Period   *interest.Period
	Rows     []StatementRow
	Interest decimal.Decimal
	// ClosingBalance is the last period transaction's balance plus interest.
	ClosingBalance int64
}

type StatementService struct {
	repo     store.AccountRepository
	timeline *rates.Timeline
	logger   *logrus.Logger
}

func NewStatementService(repo store.AccountRepository, timeline *rates.Timeline, logger *logrus.Logger) *StatementService {
	return &StatementService{repo: repo, timeline: timeline, logger: logger}
}

// Full lists the whole ledger of an account, without interest.
func (ss *StatementService) Full(accountID string) (*Statement, error) {
	acc, err := ss.repo.FindAccount(accountID)
	if err != nil {
		return nil, err
	}

	history := acc.History()
	stmt := &Statement{
		AccountID: acc.ID,
		Rows:      toRows(history),
		Interest:  decimal.Zero,
	}
	if len(history) > 0 {
		stmt.ClosingBalance = history[len(history)-1].Balance
	}
	return stmt, nil
}

// Monthly lists the period's transactions followed by the interest row
// dated on the period's last day.
func (ss *StatementService) Monthly(accountID string, period interest.Period) (*Statement, error) {
	period, err := interest.NewPeriod(period.Start, period.End)
	if err != nil {
		return nil, err
	}

	acc, err := ss.repo.FindAccount(accountID)
	if err != nil {
		return nil, err
	}

	txns := acc.InRange(period.Start, period.End)
	earned := interest.Calculate(txns, ss.timeline.Snapshot(), period)
	earnedCents := earned.Shift(2).IntPart()

	var lastBalance int64
	if len(txns) > 0 {
		lastBalance = txns[len(txns)-1].Balance
	}
	closing := lastBalance + earnedCents

	rows := toRows(txns)
	rows = append(rows, StatementRow{
		Date:    period.End,
		Type:    constants.CodeInterest,
		Amount:  earnedCents,
		Balance: closing,
	})

	ss.logger.WithFields(logrus.Fields{
		"account":  acc.ID,
		"period":   period.String(),
		"days":     period.Days(),
		"txns":     len(txns),
		"interest": earned.StringFixed(2),
	}).Debug("monthly statement generated")

	return &Statement{
		AccountID:      acc.ID,
		Period:         &period,
		Rows:           rows,
		Interest:       earned,
		ClosingBalance: closing,
	}, nil
}

func toRows(txns []ledger.Transaction) []StatementRow {
	rows := make([]StatementRow, 0, len(txns)+1)
	for _, t := range txns {
		rows = append(rows, StatementRow{
			Date:    t.Date,
			TxnID:   t.ID,
			Type:    string(t.Kind),
			Amount:  t.Amount,
			Balance: t.Balance,
		})
	}
	return rows
}
