package interest

import (
	"sort"

	"cloud.google.com/go/civil"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/ledger"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/rates"
	"github.com/shopspring/decimal"
)

type ActivityKind int

const (
	RateChange ActivityKind = iota
	TransactionActivity
	PeriodBoundary
)

func (k ActivityKind) String() string {
	switch k {
	case RateChange:
		return "RateChange"
	case TransactionActivity:
		return "Transaction"
	case PeriodBoundary:
		return "PeriodBoundary"
	default:
		return "Unknown"
	}
}

// Activity is one accrual checkpoint. Balance is meaningful for
// transactions, Rate for rate changes.
type Activity struct {
	Date    civil.Date
	Kind    ActivityKind
	Ref     string
	Balance int64
	Rate    decimal.Decimal
}

// Merge folds transactions, rate changes and the closing boundary into one
// activity per date, ordered by date.
//
// On a shared date the last writer wins, writing in this category order:
// rate changes, then transactions in append order, then the boundary. A
// transaction therefore hides a same-day rate change (the rate is still
// found through the full rule history), the day's last transaction hides
// earlier ones, and the boundary always closes the period.
func Merge(txns []ledger.Transaction, rules []rates.Rule, periodEnd civil.Date) []Activity {
	byDate := make(map[civil.Date]Activity, len(txns)+len(rules)+1)

	for _, r := range rules {
		byDate[r.Date] = Activity{Date: r.Date, Kind: RateChange, Ref: r.ID, Rate: r.Rate}
	}
	for _, t := range txns {
		byDate[t.Date] = Activity{Date: t.Date, Kind: TransactionActivity, Ref: t.ID, Balance: t.Balance}
	}
	byDate[periodEnd] = Activity{Date: periodEnd, Kind: PeriodBoundary}

	out := make([]Activity, 0, len(byDate))
	for _, a := range byDate {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
