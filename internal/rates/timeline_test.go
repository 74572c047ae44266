package rates

import (
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) civil.Date {
	t.Helper()
	tm, err := time.Parse("20060102", s)
	require.NoError(t, err)
	return civil.DateOf(tm)
}

func rule(t *testing.T, date, id, rate string) Rule {
	t.Helper()
	return Rule{Date: day(t, date), ID: id, Rate: decimal.RequireFromString(rate)}
}

func TestUpsertIsIdempotent(t *testing.T) {
	tl := NewTimeline()

	assert.False(t, tl.Upsert(rule(t, "20230101", "RULE01", "1.95")))
	assert.True(t, tl.Upsert(rule(t, "20230101", "RULE01", "1.95")))

	assert.Equal(t, 1, tl.Len())
	assert.True(t, decimal.RequireFromString("1.95").Equal(tl.EffectiveRateOn(day(t, "20230102"))))
}

func TestUpsertReplacesRateWithoutTrace(t *testing.T) {
	tl := NewTimeline()
	tl.Upsert(rule(t, "20230101", "RULE01", "1.95"))
	tl.Upsert(rule(t, "20230101", "RULE01", "2.50"))

	rules := tl.Rules()
	require.Len(t, rules, 1)
	assert.Equal(t, "2.5", rules[0].Rate.String())
	assert.Equal(t, "2.5", tl.EffectiveRateOn(day(t, "20231231")).String())
}

func TestUpsertKeepsRulesWithDifferentKey(t *testing.T) {
	tl := NewTimeline()
	tl.Upsert(rule(t, "20230101", "RULE01", "1.95"))
	tl.Upsert(rule(t, "20230201", "RULE01", "2.00"))
	tl.Upsert(rule(t, "20230101", "RULE02", "2.10"))

	assert.Equal(t, 3, tl.Len())
}

func TestEffectiveRateOn(t *testing.T) {
	tl := NewTimeline()
	tl.Upsert(rule(t, "20230101", "RULE01", "1.95"))
	tl.Upsert(rule(t, "20230520", "RULE02", "1.90"))
	tl.Upsert(rule(t, "20230615", "RULE03", "2.20"))

	tests := []struct {
		date string
		want string
	}{
		{"20221231", "0"},
		{"20230101", "1.95"},
		{"20230519", "1.95"},
		{"20230520", "1.9"},
		{"20230614", "1.9"},
		{"20230615", "2.2"},
		{"20240101", "2.2"},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, tl.EffectiveRateOn(day(t, tt.date)).String())
		})
	}
}

func TestEffectiveRateOnSameDateLastAddedWins(t *testing.T) {
	tl := NewTimeline()
	tl.Upsert(rule(t, "20230101", "A", "1.00"))
	tl.Upsert(rule(t, "20230101", "B", "3.00"))
	assert.Equal(t, "3", tl.EffectiveRateOn(day(t, "20230105")).String())

	// redefining A moves it to the back
	tl.Upsert(rule(t, "20230101", "A", "1.50"))
	assert.Equal(t, "1.5", tl.EffectiveRateOn(day(t, "20230105")).String())
}

func TestRateResolutionIsFlatBetweenRuleDates(t *testing.T) {
	tl := NewTimeline()
	tl.Upsert(rule(t, "20230110", "R1", "1.00"))
	tl.Upsert(rule(t, "20230120", "R2", "2.00"))

	d1 := day(t, "20230110")
	for d := d1; d.Before(day(t, "20230120")); d = d.AddDays(1) {
		assert.True(t, tl.EffectiveRateOn(d1).Equal(tl.EffectiveRateOn(d)), "rate changed on %s", d)
	}
}

func TestInRangeIsInclusive(t *testing.T) {
	tl := NewTimeline()
	tl.Upsert(rule(t, "20230531", "R0", "1.00"))
	tl.Upsert(rule(t, "20230601", "R1", "1.00"))
	tl.Upsert(rule(t, "20230615", "R2", "2.00"))
	tl.Upsert(rule(t, "20230630", "R3", "3.00"))
	tl.Upsert(rule(t, "20230701", "R4", "4.00"))

	got := tl.InRange(day(t, "20230601"), day(t, "20230630"))
	ids := make([]string, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"R1", "R2", "R3"}, ids)
}

func TestRulesAreSortedByDateThenID(t *testing.T) {
	tl := NewTimeline()
	tl.Upsert(rule(t, "20230615", "RULE03", "2.20"))
	tl.Upsert(rule(t, "20230101", "RULE01", "1.95"))
	tl.Upsert(rule(t, "20230520", "RULE02", "1.90"))
	tl.Upsert(rule(t, "20230101", "RULE00", "1.00"))

	var ids []string
	for _, r := range tl.Rules() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"RULE00", "RULE01", "RULE02", "RULE03"}, ids)
}

func TestSnapshotIsIsolated(t *testing.T) {
	tl := NewTimeline()
	tl.Upsert(rule(t, "20230101", "RULE01", "1.95"))
	snap := tl.Snapshot()

	tl.Upsert(rule(t, "20230101", "RULE01", "5.00"))
	tl.Upsert(rule(t, "20230201", "RULE02", "6.00"))

	assert.Equal(t, "1.95", snap.EffectiveRateOn(day(t, "20230301")).String())
	assert.Len(t, snap.InRange(day(t, "20230101"), day(t, "20231231")), 1)
}

func TestConcurrentUpsertAndLookup(t *testing.T) {
	tl := NewTimeline()
	d := day(t, "20230101")
	tl.Upsert(Rule{Date: d, ID: "RULE01", Rate: decimal.NewFromInt(1)})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tl.Upsert(Rule{Date: d, ID: "RULE01", Rate: decimal.NewFromInt(int64(j%9 + 1))})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				rate := tl.EffectiveRateOn(d)
				assert.True(t, rate.IsPositive())
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, tl.Len())
}
