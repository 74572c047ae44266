package store

import "github.com/H-S-E-N-I-D/AwesomeGIC/internal/ledger"

// AccountRepository owns every account of the running session.
type AccountRepository interface {
	// AddOrGetAccount returns the account with id, creating it on first use.
	AddOrGetAccount(id string) (*ledger.Account, error)
	FindAccount(id string) (*ledger.Account, error)
	GetAllAccounts() []*ledger.Account
}
