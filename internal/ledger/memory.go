package ledger

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/yourusername/bettrack/internal/models"
)

// MemoryStore implements Store with an in-process table. It backs tests and
// mirrors the ordering and state-transition guarantees of PostgresStore.
type MemoryStore struct {
	mu   sync.RWMutex
	bets map[uuid.UUID]models.Bet
}

// NewMemoryStore creates an empty in-memory bet store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{bets: make(map[uuid.UUID]models.Bet)}
}

// Insert persists a new bet
func (s *MemoryStore) Insert(_ context.Context, bet *models.Bet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bets[bet.ID] = *bet
	return nil
}

// GetByID retrieves a bet by ID
func (s *MemoryStore) GetByID(_ context.Context, id uuid.UUID) (*models.Bet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bet, ok := s.bets[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &bet, nil
}

// ListPending retrieves all pending bets, most recently placed first
func (s *MemoryStore) ListPending(ctx context.Context) ([]*models.Bet, error) {
	return s.collect(func(b models.Bet) bool { return b.IsPending() }), nil
}

// List retrieves a snapshot of all bets
func (s *MemoryStore) List(ctx context.Context) ([]*models.Bet, error) {
	return s.collect(func(models.Bet) bool { return true }), nil
}

// ListBySport retrieves a snapshot of all bets for one sport
func (s *MemoryStore) ListBySport(_ context.Context, sport string) ([]*models.Bet, error) {
	return s.collect(func(b models.Bet) bool { return b.Sport == sport }), nil
}

// Update rewrites the editable fields of a bet that is still pending
func (s *MemoryStore) Update(_ context.Context, bet *models.Bet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.bets[bet.ID]
	if !ok {
		return models.ErrNotFound
	}
	if !current.IsPending() {
		return models.ErrAlreadyResolved
	}

	current.Sport = bet.Sport
	current.Team = bet.Team
	current.Odds = bet.Odds
	current.Amount = bet.Amount
	current.PotentialWin = bet.PotentialWin
	s.bets[bet.ID] = current
	return nil
}

// UpdateResult settles a pending bet as won or lost
func (s *MemoryStore) UpdateResult(_ context.Context, id uuid.UUID, won bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.bets[id]
	if !ok {
		return models.ErrNotFound
	}
	if !current.IsPending() {
		return models.ErrAlreadyResolved
	}

	current.Result = models.ResultFromWon(won)
	s.bets[id] = current
	return nil
}

// Delete removes a bet that is still pending
func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.bets[id]
	if !ok {
		return models.ErrNotFound
	}
	if !current.IsPending() {
		return models.ErrAlreadyResolved
	}

	delete(s.bets, id)
	return nil
}

// DistinctSports returns every sport with at least one bet, ordered lexicographically
func (s *MemoryStore) DistinctSports(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, bet := range s.bets {
		seen[bet.Sport] = struct{}{}
	}

	sports := make([]string, 0, len(seen))
	for sport := range seen {
		sports = append(sports, sport)
	}
	sort.Strings(sports)
	return sports, nil
}

func (s *MemoryStore) collect(keep func(models.Bet) bool) []*models.Bet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var bets []*models.Bet
	for _, bet := range s.bets {
		if keep(bet) {
			b := bet
			bets = append(bets, &b)
		}
	}

	// Most recently placed first, id as a deterministic tie-break
	sort.Slice(bets, func(i, j int) bool {
		if !bets[i].PlacedAt.Equal(bets[j].PlacedAt) {
			return bets[i].PlacedAt.After(bets[j].PlacedAt)
		}
		return bets[i].ID.String() < bets[j].ID.String()
	})
	return bets
}
