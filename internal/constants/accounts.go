package constants

const (
	MaxSafeBalanceCents = 9223372036854775807 / 2
)

const (
	MaxAccountIDLen = 100
	CentsPerUnit    = 100
)

const (
	DefaultBankName = "AwesomeGIC Bank"
	AppName         = "awesomegic"
	EnvPrefix       = "AWESOMEGIC"
)

// Menu choices of the interactive shell
const (
	MenuTransactions = "T"
	MenuInterestRule = "I"
	MenuStatement    = "P"
	MenuQuit         = "Q"
)
