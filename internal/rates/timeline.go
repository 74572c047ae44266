// Package rates keeps the bank-wide history of interest rate rules and
// answers which annual rate is in force on a given day.
package rates

import (
	"sort"
	"sync"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// RuleKey is the natural identity of a rule. Two rules with the same key
// describe the same rule, whatever their rates.
type RuleKey struct {
	Date civil.Date
	ID   string
}

// Rule sets the annual interest rate, in percent, effective from Date onwards.
type Rule struct {
	Date civil.Date
	ID   string
	Rate decimal.Decimal
}

func (r Rule) Key() RuleKey {
	return RuleKey{Date: r.Date, ID: r.ID}
}

// ruleSet is kept in insertion order; a replaced rule moves to the end.
type ruleSet []Rule

func (rs ruleSet) inRange(start, end civil.Date) []Rule {
	var out []Rule
	for _, r := range rs {
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// effectiveOn picks the rule with the latest date not after d.
// On equal dates the rule inserted last wins.
func (rs ruleSet) effectiveOn(d civil.Date) decimal.Decimal {
	var (
		best  Rule
		found bool
	)
	for _, r := range rs {
		if r.Date.After(d) {
			continue
		}
		if !found || !r.Date.Before(best.Date) {
			best = r
			found = true
		}
	}
	if !found {
		return decimal.Zero
	}
	return best.Rate
}

func (rs ruleSet) sorted() []Rule {
	out := make([]Rule, len(rs))
	copy(out, rs)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Timeline is the shared, read-mostly rule collection. Writers are
// serialized and an Upsert is atomic with respect to every reader.
type Timeline struct {
	mu    sync.RWMutex
	rules ruleSet
}

func NewTimeline() *Timeline {
	return &Timeline{}
}

// Upsert adds rule, first removing any rule with the same date and id.
// It reports whether an existing rule was replaced.
func (t *Timeline) Upsert(rule Rule) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	replaced := false
	kept := t.rules[:0:0]
	for _, r := range t.rules {
		if r.Key() == rule.Key() {
			replaced = true
			continue
		}
		kept = append(kept, r)
	}
	t.rules = append(kept, rule)
	return replaced
}

// InRange returns the rules effective between start and end, both inclusive.
func (t *Timeline) InRange(start, end civil.Date) []Rule {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rules.inRange(start, end)
}

// EffectiveRateOn returns the rate in force on d, or zero when no rule
// starts on or before d.
func (t *Timeline) EffectiveRateOn(d civil.Date) decimal.Decimal {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rules.effectiveOn(d)
}

// Rules lists every rule ordered by date, then id.
func (t *Timeline) Rules() []Rule {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rules.sorted()
}

func (t *Timeline) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rules)
}

// Snapshot freezes the current rules so a long computation sees one
// consistent rule set.
func (t *Timeline) Snapshot() *Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	rules := make(ruleSet, len(t.rules))
	copy(rules, t.rules)
	return &Snapshot{rules: rules}
}

// Snapshot is an immutable copy of a Timeline.
type Snapshot struct {
	rules ruleSet
}

func (s *Snapshot) InRange(start, end civil.Date) []Rule {
	return s.rules.inRange(start, end)
}

func (s *Snapshot) EffectiveRateOn(d civil.Date) decimal.Decimal {
	return s.rules.effectiveOn(d)
}
