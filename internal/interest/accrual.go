// Package interest computes time-weighted daily interest for an account
// over a period, from its ledger and the bank's rate rules.
package interest

import (
	"cloud.google.com/go/civil"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/constants"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/ledger"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/rates"
	"github.com/shopspring/decimal"
)

var daysInYear = decimal.NewFromInt(constants.DaysInYear)

// RateSource resolves the annual rate in force on a day, over the whole
// rule history.
type RateSource interface {
	EffectiveRateOn(d civil.Date) decimal.Decimal
}

// RuleSource is a RateSource that can also list rules by date.
type RuleSource interface {
	RateSource
	InRange(start, end civil.Date) []rates.Rule
}

// Accrue integrates balance × daily rate over the merged activities and
// returns the interest rounded half-up to cents.
//
// Each activity's balance covers the days from its date up to the day
// before the next activity; the last span also covers the final date.
// Rate changes never move the tracked balance.
func Accrue(activities []Activity, src RateSource) decimal.Decimal {
	if len(activities) < 2 {
		return decimal.Zero.Round(2)
	}

	var (
		balance = decimal.Zero
		total   = decimal.Zero
	)
	for i := 0; i+1 < len(activities); i++ {
		current, next := activities[i], activities[i+1]

		if current.Kind != RateChange {
			balance = decimal.New(current.Balance, -2)
		}

		spanEnd := next.Date.AddDays(-1)
		if i+2 == len(activities) {
			spanEnd = next.Date
		}
		days := spanEnd.DaysSince(current.Date) + 1
		if days <= 0 {
			continue
		}

		rate := src.EffectiveRateOn(spanEnd)
		// rate is a percentage
		total = total.Add(balance.Mul(rate).Shift(-2).Mul(decimal.NewFromInt(int64(days))))
	}

	return total.DivRound(daysInYear, 2)
}

// Calculate is the full pipeline for one period: restrict the ledger and
// rules to the period, merge them and accrue.
func Calculate(txns []ledger.Transaction, src RuleSource, period Period) decimal.Decimal {
	var inPeriod []ledger.Transaction
	for _, t := range txns {
		if period.Contains(t.Date) {
			inPeriod = append(inPeriod, t)
		}
	}
	activities := Merge(inPeriod, src.InRange(period.Start, period.End), period.End)
	return Accrue(activities, src)
}
