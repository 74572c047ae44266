package service

import (
	"cloud.google.com/go/civil"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/ledger"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/rates"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type RuleService struct {
	timeline *rates.Timeline
	logger   *logrus.Logger
}

func NewRuleService(timeline *rates.Timeline, logger *logrus.Logger) *RuleService {
	return &RuleService{timeline: timeline, logger: logger}
}

// Define adds a rule, replacing the rule with the same date and id if any.
// Range checks belong to the caller.
func (rs *RuleService) Define(date civil.Date, ruleID string, rate decimal.Decimal) bool {
	replaced := rs.timeline.Upsert(rates.Rule{Date: date, ID: ruleID, Rate: rate})

	rs.logger.WithFields(logrus.Fields{
		"rule":     ruleID,
		"date":     ledger.FormatDate(date),
		"rate":     rate.String(),
		"replaced": replaced,
	}).Debug("interest rule defined")

	return replaced
}

func (rs *RuleService) GetAllRules() []rates.Rule {
	return rs.timeline.Rules()
}
