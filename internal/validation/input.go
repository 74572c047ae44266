package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/constants"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/interest"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/ledger"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/utils"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInputFormat  = errors.New("invalid input format")
	ErrInvalidDate         = errors.New("invalid date, use YYYYMMdd format")
	ErrInvalidPeriodFormat = errors.New("invalid period, use YYYYMM format")
	ErrInvalidKind         = errors.New("invalid transaction type, use 'D' for deposit or 'W' for withdrawal")
	ErrInvalidAmount       = errors.New("invalid amount, use a positive number with up to 2 decimal places")
	ErrInvalidRateFormat   = errors.New("invalid rate format")
	ErrRateOutOfRange      = errors.New("rate should be greater than 0 and less than 100")
	ErrInvalidAccountID    = errors.New("invalid account id")
)

var (
	amountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	datePattern   = regexp.MustCompile(`^\d{8}$`)
	periodPattern = regexp.MustCompile(`^\d{6}$`)

	minRate = decimal.NewFromInt(constants.MinRatePercent)
	maxRate = decimal.NewFromInt(constants.MaxRatePercent)
)

// TransactionInput is a validated "<Date> <Account> <Type> <Amount>" line.
type TransactionInput struct {
	Date      civil.Date
	AccountID string
	Kind      ledger.Kind
	Amount    int64
}

// RuleInput is a validated "<Date> <RuleId> <Rate in %>" line.
type RuleInput struct {
	Date civil.Date
	ID   string
	Rate decimal.Decimal
}

// StatementInput is a validated "<Account> <Year><Month>" line.
type StatementInput struct {
	AccountID string
	Period    interest.Period
}

func ParseTransactionLine(line string) (TransactionInput, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return TransactionInput{}, fmt.Errorf("%w: expected <Date> <Account> <Type> <Amount>", ErrInvalidInputFormat)
	}

	date, err := ValidateDate(fields[0])
	if err != nil {
		return TransactionInput{}, err
	}
	accountID, err := ValidateAccountID(fields[1])
	if err != nil {
		return TransactionInput{}, err
	}
	kind, err := ValidateKind(fields[2])
	if err != nil {
		return TransactionInput{}, err
	}
	amount, err := ValidateAmount(fields[3])
	if err != nil {
		return TransactionInput{}, err
	}

	return TransactionInput{Date: date, AccountID: accountID, Kind: kind, Amount: amount}, nil
}

func ParseRuleLine(line string) (RuleInput, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return RuleInput{}, fmt.Errorf("%w: expected <Date> <RuleId> <Rate in %%>", ErrInvalidInputFormat)
	}

	date, err := ValidateDate(fields[0])
	if err != nil {
		return RuleInput{}, err
	}
	rate, err := ValidateRate(fields[2])
	if err != nil {
		return RuleInput{}, err
	}

	return RuleInput{Date: date, ID: fields[1], Rate: rate}, nil
}

func ParseStatementLine(line string) (StatementInput, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return StatementInput{}, fmt.Errorf("%w: expected <Account> <Year><Month>", ErrInvalidInputFormat)
	}

	accountID, err := ValidateAccountID(fields[0])
	if err != nil {
		return StatementInput{}, err
	}
	period, err := ValidatePeriod(fields[1])
	if err != nil {
		return StatementInput{}, err
	}

	return StatementInput{AccountID: accountID, Period: period}, nil
}

// ValidateDate accepts a real calendar day written as YYYYMMdd.
func ValidateDate(s string) (civil.Date, error) {
	if !datePattern.MatchString(s) {
		return civil.Date{}, ErrInvalidDate
	}
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return civil.Date{}, ErrInvalidDate
	}
	return civil.DateOf(t), nil
}

// ValidatePeriod accepts a month written as YYYYMM.
func ValidatePeriod(s string) (interest.Period, error) {
	if !periodPattern.MatchString(s) {
		return interest.Period{}, ErrInvalidPeriodFormat
	}
	p, err := interest.ParsePeriod(s)
	if err != nil {
		return interest.Period{}, ErrInvalidPeriodFormat
	}
	return p, nil
}

func ValidateKind(s string) (ledger.Kind, error) {
	kind := ledger.Kind(strings.ToUpper(s))
	if !kind.Valid() {
		return "", ErrInvalidKind
	}
	return kind, nil
}

// ValidateAmount returns the amount in cents.
func ValidateAmount(s string) (int64, error) {
	if !amountPattern.MatchString(s) {
		return 0, ErrInvalidAmount
	}
	cents, err := utils.ParseToCents(s)
	if err != nil || cents <= 0 {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}

// ValidateRate accepts a percentage strictly between 0 and 100.
func ValidateRate(s string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidRateFormat
	}
	if rate.LessThanOrEqual(minRate) || rate.GreaterThanOrEqual(maxRate) {
		return decimal.Decimal{}, ErrRateOutOfRange
	}
	return rate, nil
}

func ValidateAccountID(s string) (string, error) {
	id := strings.TrimSpace(s)
	if id == "" || len(id) > constants.MaxAccountIDLen {
		return "", ErrInvalidAccountID
	}
	return id, nil
}
