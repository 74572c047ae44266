package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/ledger"
)

// MemoryStore keeps accounts for the lifetime of the process. Accounts are
// never deleted.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]*ledger.Account
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: make(map[string]*ledger.Account)}
}

func (s *MemoryStore) AddOrGetAccount(id string) (*ledger.Account, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidID
	}

	s.mu.RLock()
	acc, ok := s.accounts[id]
	s.mu.RUnlock()
	if ok {
		return acc, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// another writer may have created it in between
	if acc, ok := s.accounts[id]; ok {
		return acc, nil
	}
	acc = ledger.NewAccount(id)
	s.accounts[id] = acc
	return acc, nil
}

func (s *MemoryStore) FindAccount(id string) (*ledger.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrAccountNotFound, id)
	}
	return acc, nil
}

// GetAllAccounts lists accounts ordered by id.
func (s *MemoryStore) GetAllAccounts() []*ledger.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*ledger.Account, 0, len(s.accounts))
	for _, acc := range s.accounts {
		out = append(out, acc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
