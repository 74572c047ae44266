package constants

const (
	// Transaction codes as typed at the prompt and printed in statements
	CodeDeposit    = "D"
	CodeWithdrawal = "W"
	CodeInterest   = "I"

	// Date Layout
	DateFormat   = "20060102"
	PeriodFormat = "200601"
)

const (
	// DaysInYear is the day-count basis used to turn annual rates into daily accrual.
	DaysInYear = 365

	// Rates are percentages in the open interval (MinRatePercent, MaxRatePercent).
	MinRatePercent = 0
	MaxRatePercent = 100
)
