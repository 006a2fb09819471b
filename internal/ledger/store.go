package ledger

import "sync"

// LedgerStore maps user ids to their ledgers. Ledgers are created lazily on
// first write. The store's lock only guards the map itself; serializing
// operations within one ledger is the caller's job.
type LedgerStore struct {
	mu      sync.RWMutex
	ledgers map[string]*UserLedger
}

func NewLedgerStore() *LedgerStore {
	return &LedgerStore{ledgers: make(map[string]*UserLedger)}
}

func (s *LedgerStore) GetOrCreate(userID string) *UserLedger {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.ledgers[userID]; ok {
		return l
	}
	l := NewUserLedger()
	s.ledgers[userID] = l
	return l
}

// Get returns the ledger for userID without creating one. Readers treat a
// missing ledger as cold start, never as an error.
func (s *LedgerStore) Get(userID string) (*UserLedger, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.ledgers[userID]
	return l, ok
}
