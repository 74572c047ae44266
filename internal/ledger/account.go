package ledger

// Account is an opaque, externally validated id with its ledger.
// The current balance is the balance after the last transaction, 0 if none.
type Account struct {
	ID string
	*Ledger
}

func NewAccount(id string) *Account {
	return &Account{ID: id, Ledger: New()}
}
