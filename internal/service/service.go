package service

import (
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/config"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/rates"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/store"
	"github.com/sirupsen/logrus"
)

type Service struct {
	Transaction *TransactionService
	Rule        *RuleService
	Statement   *StatementService
	Config      *config.Config
}

// NewService wires the use cases around one account store and the
// bank-wide rate timeline.
func NewService(repo store.AccountRepository, timeline *rates.Timeline, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		Transaction: NewTransactionService(repo, logger),
		Rule:        NewRuleService(timeline, logger),
		Statement:   NewStatementService(repo, timeline, logger),
		Config:      cfg,
	}
}
