package validation

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionLine(t *testing.T) {
	in, err := ParseTransactionLine("20230626  AC001 w 100.5")
	require.NoError(t, err)

	assert.Equal(t, civil.Date{Year: 2023, Month: time.June, Day: 26}, in.Date)
	assert.Equal(t, "AC001", in.AccountID)
	assert.Equal(t, ledger.Withdrawal, in.Kind)
	assert.Equal(t, int64(10050), in.Amount)
}

func TestParseTransactionLineErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"20230626 AC001 D", ErrInvalidInputFormat},
		{"20230626 AC001 D 100 extra", ErrInvalidInputFormat},
		{"2023062 AC001 D 100", ErrInvalidDate},
		{"20230231 AC001 D 100", ErrInvalidDate},
		{"2023-06-26 AC001 D 100", ErrInvalidDate},
		{"20230626 AC001 X 100", ErrInvalidKind},
		{"20230626 AC001 D 0", ErrInvalidAmount},
		{"20230626 AC001 D 0.00", ErrInvalidAmount},
		{"20230626 AC001 D -5", ErrInvalidAmount},
		{"20230626 AC001 D 1.234", ErrInvalidAmount},
		{"20230626 AC001 D 1e3", ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := ParseTransactionLine(tt.line)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseRuleLine(t *testing.T) {
	in, err := ParseRuleLine("20230615 RULE03 2.20")
	require.NoError(t, err)

	assert.Equal(t, civil.Date{Year: 2023, Month: time.June, Day: 15}, in.Date)
	assert.Equal(t, "RULE03", in.ID)
	assert.Equal(t, "2.2", in.Rate.String())
}

func TestParseRuleLineErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"20230615 RULE03", ErrInvalidInputFormat},
		{"20231315 RULE03 2.20", ErrInvalidDate},
		{"20230615 RULE03 abc", ErrInvalidRateFormat},
		{"20230615 RULE03 0", ErrRateOutOfRange},
		{"20230615 RULE03 100", ErrRateOutOfRange},
		{"20230615 RULE03 -1", ErrRateOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := ParseRuleLine(tt.line)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseStatementLine(t *testing.T) {
	in, err := ParseStatementLine("AC001 202306")
	require.NoError(t, err)

	assert.Equal(t, "AC001", in.AccountID)
	assert.Equal(t, civil.Date{Year: 2023, Month: time.June, Day: 1}, in.Period.Start)
	assert.Equal(t, civil.Date{Year: 2023, Month: time.June, Day: 30}, in.Period.End)
}

func TestParseStatementLineErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"AC001", ErrInvalidInputFormat},
		{"AC001 202306125", ErrInvalidPeriodFormat},
		{"AC001 4654654654654", ErrInvalidPeriodFormat},
		{"AC001 202313", ErrInvalidPeriodFormat},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := ParseStatementLine(tt.line)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateRateBounds(t *testing.T) {
	for _, ok := range []string{"0.01", "1.95", "99.99"} {
		_, err := ValidateRate(ok)
		assert.NoError(t, err, ok)
	}
}

func TestValidateAccountID(t *testing.T) {
	_, err := ValidateAccountID("")
	assert.ErrorIs(t, err, ErrInvalidAccountID)

	id, err := ValidateAccountID("AC001")
	require.NoError(t, err)
	assert.Equal(t, "AC001", id)
}
