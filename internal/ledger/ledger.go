// Package ledger records deposits and withdrawals of a single account.
//
// Amounts and balances are int64 cents. Records are immutable once
// appended; a correction is a new transaction.
package ledger

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"cloud.google.com/go/civil"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/constants"
)

var (
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrUnknownKind       = errors.New("unknown transaction type")
	ErrBalanceOverflow   = errors.New("balance would exceed the supported maximum")
)

type Kind string

const (
	Deposit    Kind = constants.CodeDeposit
	Withdrawal Kind = constants.CodeWithdrawal
)

func (k Kind) Valid() bool {
	return k == Deposit || k == Withdrawal
}

func (k Kind) String() string {
	switch k {
	case Deposit:
		return "Deposit"
	case Withdrawal:
		return "Withdrawal"
	default:
		return string(k)
	}
}

// Transaction is one posted entry. Balance is the account balance right
// after this entry was applied.
type Transaction struct {
	ID      string
	Seq     int
	Date    civil.Date
	Kind    Kind
	Amount  int64
	Balance int64
}

// TransactionID formats the id of the seq-th transaction of a day, e.g. 20230626-02.
func TransactionID(date civil.Date, seq int) string {
	return fmt.Sprintf("%s-%02d", FormatDate(date), seq)
}

func FormatDate(d civil.Date) string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}

// Ledger is the ordered transaction list of one account. Append calls are
// serialized so at most one mutation is in flight.
type Ledger struct {
	mu      sync.Mutex
	balance int64
	txns    []Transaction
	perDay  map[civil.Date]int
}

func New() *Ledger {
	return &Ledger{perDay: make(map[civil.Date]int)}
}

// Append posts a transaction. A withdrawal larger than the current balance
// fails with ErrInsufficientFunds, a deposit that would not fit in int64
// with ErrBalanceOverflow; both leave the ledger unchanged.
func (l *Ledger) Append(date civil.Date, kind Kind, amount int64) (Transaction, error) {
	if amount <= 0 {
		return Transaction{}, ErrInvalidAmount
	}
	if !kind.Valid() {
		return Transaction{}, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	delta := amount
	if kind == Withdrawal {
		if l.balance-amount < 0 {
			return Transaction{}, ErrInsufficientFunds
		}
		delta = -amount
	} else if amount > math.MaxInt64-l.balance {
		return Transaction{}, ErrBalanceOverflow
	}

	// the counter follows the date value, not the entry position
	seq := l.perDay[date] + 1
	l.perDay[date] = seq
	l.balance += delta

	txn := Transaction{
		ID:      TransactionID(date, seq),
		Seq:     seq,
		Date:    date,
		Kind:    kind,
		Amount:  amount,
		Balance: l.balance,
	}
	l.txns = append(l.txns, txn)

	return txn, nil
}

// InRange returns the transactions dated within [start, end], in append order.
func (l *Ledger) InRange(start, end civil.Date) []Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []Transaction
	for _, t := range l.txns {
		if t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// History returns a copy of every transaction in append order.
func (l *Ledger) History() []Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Transaction, len(l.txns))
	copy(out, l.txns)
	return out
}

func (l *Ledger) Balance() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}
