package service

import (
	"errors"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/ledger"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/store"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/utils"
	"github.com/sirupsen/logrus"
)

type TransactionService struct {
	repo   store.AccountRepository
	logger *logrus.Logger
}

func NewTransactionService(repo store.AccountRepository, logger *logrus.Logger) *TransactionService {
	return &TransactionService{repo: repo, logger: logger}
}

// Record posts a transaction to accountID, opening the account on the first
// transaction that names it. The account stays open even when that first
// transaction is rejected.
func (ts *TransactionService) Record(accountID string, date civil.Date, kind ledger.Kind, amount int64) (*ledger.Account, ledger.Transaction, error) {
	fields := logrus.Fields{
		"account": accountID,
		"date":    ledger.FormatDate(date),
		"kind":    kind.String(),
		"amount":  utils.FormatFromCents(amount),
	}

	_, findErr := ts.repo.FindAccount(accountID)
	if findErr != nil && !errors.Is(findErr, store.ErrAccountNotFound) {
		return nil, ledger.Transaction{}, findErr
	}

	acc, err := ts.repo.AddOrGetAccount(accountID)
	if err != nil {
		return nil, ledger.Transaction{}, fmt.Errorf("failed to open account '%s': %w", accountID, err)
	}
	if findErr != nil {
		ts.logger.WithFields(logrus.Fields{
			"account":  accountID,
			"accounts": len(ts.repo.GetAllAccounts()),
		}).Debug("account opened")
	}

	txn, err := acc.Append(date, kind, amount)
	if err != nil {
		ts.logger.WithFields(fields).WithError(err).Info("transaction rejected")
		return acc, ledger.Transaction{}, fmt.Errorf("account '%s': %w", accountID, err)
	}

	ts.logger.WithFields(fields).WithField("txn", txn.ID).Debug("transaction recorded")
	return acc, txn, nil
}
