package interest

import (
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/constants"
)

// ErrInvalidPeriod means the bounds handed in are malformed or inverted,
// i.e. the validation layer let something through.
var ErrInvalidPeriod = errors.New("invalid period")

// Period is an inclusive range of calendar days.
type Period struct {
	Start civil.Date
	End   civil.Date
}

func NewPeriod(start, end civil.Date) (Period, error) {
	if !start.IsValid() || !end.IsValid() {
		return Period{}, fmt.Errorf("%w: %v - %v", ErrInvalidPeriod, start, end)
	}
	if end.Before(start) {
		return Period{}, fmt.Errorf("%w: end %s before start %s", ErrInvalidPeriod, end, start)
	}
	return Period{Start: start, End: end}, nil
}

// MonthPeriod spans the first to the last day of the given month.
func MonthPeriod(year int, month time.Month) (Period, error) {
	if month < time.January || month > time.December {
		return Period{}, fmt.Errorf("%w: month %d", ErrInvalidPeriod, int(month))
	}
	start := civil.Date{Year: year, Month: month, Day: 1}
	end := civil.Date{Year: year, Month: month + 1, Day: 1}.AddDays(-1)
	return NewPeriod(start, end)
}

// ParsePeriod reads a YYYYMM month.
func ParsePeriod(s string) (Period, error) {
	if len(s) != len(constants.PeriodFormat) {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
	t, err := time.Parse(constants.PeriodFormat, s)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
	return MonthPeriod(t.Year(), t.Month())
}

func (p Period) Contains(d civil.Date) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

// Days is the number of calendar days in the period.
func (p Period) Days() int {
	return p.End.DaysSince(p.Start) + 1
}

func (p Period) String() string {
	return fmt.Sprintf("%s..%s", p.Start, p.End)
}
