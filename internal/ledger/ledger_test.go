package ledger

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/bettrack/internal/models"
)

func newTestLedger() *Ledger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewLedger(NewMemoryStore(), log)
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestAddComputesPotentialWin(t *testing.T) {
	l := newTestLedger()
	ctx := context.Background()

	bet, err := l.Add(ctx, "NFL", "Eagles", 150, 100)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, bet.ID)
	assert.Equal(t, models.ResultPending, bet.Result)
	assert.InDelta(t, 150.0, bet.PotentialWin, 1e-9)
	assert.False(t, bet.PlacedAt.IsZero())
}

func TestAddRejectsInvalidInput(t *testing.T) {
	l := newTestLedger()
	ctx := context.Background()

	_, err := l.Add(ctx, "", "Eagles", 150, 100)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = l.Add(ctx, "NFL", "   ", 150, 100)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = l.Add(ctx, "NFL", "Eagles", 0, 100)
	assert.ErrorIs(t, err, models.ErrInvalidOdds)

	_, err = l.Add(ctx, "NFL", "Eagles", 150, -5)
	assert.ErrorIs(t, err, models.ErrInvalidAmount)

	// Nothing may be stored after rejected adds
	pending, err := l.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestListPendingEmptyLedger(t *testing.T) {
	l := newTestLedger()

	pending, err := l.ListPending(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, pending)
	assert.Empty(t, pending)
}

func TestListPendingOrderNewestFirst(t *testing.T) {
	l := newTestLedger()
	ctx := context.Background()

	first, err := l.Add(ctx, "NFL", "Eagles", 150, 100)
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := l.Add(ctx, "NBA", "Celtics", -110, 110)
	require.NoError(t, err)

	pending, err := l.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, second.ID, pending[0].ID)
	assert.Equal(t, first.ID, pending[1].ID)

	// Repeatable for a fixed state
	again, err := l.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, again, 2)
	assert.Equal(t, pending[0].ID, again[0].ID)
	assert.Equal(t, pending[1].ID, again[1].ID)
}

func TestResolveTransitionsOnce(t *testing.T) {
	l := newTestLedger()
	ctx := context.Background()

	bet, err := l.Add(ctx, "NFL", "Eagles", 150, 100)
	require.NoError(t, err)

	require.NoError(t, l.Resolve(ctx, bet.ID, true))

	stored, err := l.store.GetByID(ctx, bet.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ResultWon, stored.Result)

	// Second resolve must not flip the outcome
	err = l.Resolve(ctx, bet.ID, false)
	assert.ErrorIs(t, err, models.ErrAlreadyResolved)

	stored, err = l.store.GetByID(ctx, bet.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ResultWon, stored.Result)
}

func TestResolveUnknownID(t *testing.T) {
	l := newTestLedger()

	err := l.Resolve(context.Background(), uuid.New(), true)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestEditRecomputesPotentialWin(t *testing.T) {
	l := newTestLedger()
	ctx := context.Background()

	bet, err := l.Add(ctx, "NFL", "Eagles", 150, 100)
	require.NoError(t, err)

	applied, err := l.Edit(ctx, bet.ID, EditParams{Odds: floatPtr(-110), Amount: floatPtr(110)})
	require.NoError(t, err)
	assert.True(t, applied)

	stored, err := l.store.GetByID(ctx, bet.ID)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, stored.PotentialWin, 1e-9)
	assert.Equal(t, "Eagles", stored.Team) // omitted fields keep their value
	assert.Equal(t, "NFL", stored.Sport)
}

func TestEditPartialUpdateKeepsFields(t *testing.T) {
	l := newTestLedger()
	ctx := context.Background()

	bet, err := l.Add(ctx, "NFL", "Eagles", 150, 100)
	require.NoError(t, err)

	applied, err := l.Edit(ctx, bet.ID, EditParams{Team: strPtr("Cowboys")})
	require.NoError(t, err)
	assert.True(t, applied)

	stored, err := l.store.GetByID(ctx, bet.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cowboys", stored.Team)
	assert.InDelta(t, 150.0, stored.Odds, 1e-9)
	assert.InDelta(t, 100.0, stored.Amount, 1e-9)
	assert.InDelta(t, 150.0, stored.PotentialWin, 1e-9)
}

func TestEditResolvedBetRejected(t *testing.T) {
	l := newTestLedger()
	ctx := context.Background()

	bet, err := l.Add(ctx, "NFL", "Eagles", 150, 100)
	require.NoError(t, err)
	require.NoError(t, l.Resolve(ctx, bet.ID, false))

	applied, err := l.Edit(ctx, bet.ID, EditParams{Amount: floatPtr(200)})
	assert.False(t, applied)
	assert.ErrorIs(t, err, models.ErrAlreadyResolved)

	stored, err := l.store.GetByID(ctx, bet.ID)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, stored.Amount, 1e-9)
}

func TestEditRejectsInvalidValues(t *testing.T) {
	l := newTestLedger()
	ctx := context.Background()

	bet, err := l.Add(ctx, "NFL", "Eagles", 150, 100)
	require.NoError(t, err)

	applied, err := l.Edit(ctx, bet.ID, EditParams{Odds: floatPtr(0)})
	assert.False(t, applied)
	assert.ErrorIs(t, err, models.ErrInvalidOdds)

	applied, err = l.Edit(ctx, bet.ID, EditParams{Sport: strPtr("  ")})
	assert.False(t, applied)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	stored, err := l.store.GetByID(ctx, bet.ID)
	require.NoError(t, err)
	assert.InDelta(t, 150.0, stored.Odds, 1e-9)
	assert.Equal(t, "NFL", stored.Sport)
}

func TestRemovePendingBet(t *testing.T) {
	l := newTestLedger()
	ctx := context.Background()

	bet, err := l.Add(ctx, "NFL", "Eagles", 150, 100)
	require.NoError(t, err)

	removed, err := l.Remove(ctx, bet.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = l.store.GetByID(ctx, bet.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRemoveResolvedBetRejected(t *testing.T) {
	l := newTestLedger()
	ctx := context.Background()

	bet, err := l.Add(ctx, "NFL", "Eagles", 150, 100)
	require.NoError(t, err)
	require.NoError(t, l.Resolve(ctx, bet.ID, true))

	removed, err := l.Remove(ctx, bet.ID)
	assert.False(t, removed)
	assert.ErrorIs(t, err, models.ErrAlreadyResolved)

	// The bet is retained permanently
	stored, err := l.store.GetByID(ctx, bet.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ResultWon, stored.Result)
}

func TestDistinctSportsOrdered(t *testing.T) {
	l := newTestLedger()
	ctx := context.Background()

	_, err := l.Add(ctx, "NHL", "Bruins", 120, 50)
	require.NoError(t, err)
	_, err = l.Add(ctx, "NBA", "Celtics", -110, 110)
	require.NoError(t, err)
	_, err = l.Add(ctx, "NBA", "Lakers", 130, 25)
	require.NoError(t, err)

	sports, err := l.DistinctSports(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"NBA", "NHL"}, sports)
}

func TestBetsForSportFilters(t *testing.T) {
	l := newTestLedger()
	ctx := context.Background()

	_, err := l.Add(ctx, "NFL", "Eagles", 150, 100)
	require.NoError(t, err)
	_, err = l.Add(ctx, "NBA", "Celtics", -110, 110)
	require.NoError(t, err)

	bets, err := l.BetsForSport(ctx, "NFL")
	require.NoError(t, err)
	require.Len(t, bets, 1)
	assert.Equal(t, "NFL", bets[0].Sport)
}

// failingStore simulates storage outages for every operation
type failingStore struct {
	err error
}

func (f *failingStore) Insert(context.Context, *models.Bet) error { return f.err }
func (f *failingStore) GetByID(context.Context, uuid.UUID) (*models.Bet, error) {
	return nil, f.err
}
func (f *failingStore) ListPending(context.Context) ([]*models.Bet, error) { return nil, f.err }
func (f *failingStore) List(context.Context) ([]*models.Bet, error)        { return nil, f.err }
func (f *failingStore) ListBySport(context.Context, string) ([]*models.Bet, error) {
	return nil, f.err
}
func (f *failingStore) Update(context.Context, *models.Bet) error           { return f.err }
func (f *failingStore) UpdateResult(context.Context, uuid.UUID, bool) error { return f.err }
func (f *failingStore) Delete(context.Context, uuid.UUID) error             { return f.err }
func (f *failingStore) DistinctSports(context.Context) ([]string, error)    { return nil, f.err }

func TestStorageFailuresSurface(t *testing.T) {
	storageErr := errors.New("connection refused")
	log := logrus.New()
	log.SetOutput(io.Discard)
	l := NewLedger(&failingStore{err: storageErr}, log)
	ctx := context.Background()

	_, err := l.Add(ctx, "NFL", "Eagles", 150, 100)
	assert.ErrorIs(t, err, storageErr)

	err = l.Resolve(ctx, uuid.New(), true)
	assert.ErrorIs(t, err, storageErr)

	removed, err := l.Remove(ctx, uuid.New())
	assert.False(t, removed)
	assert.ErrorIs(t, err, storageErr)

	_, err = l.ListPending(ctx)
	assert.ErrorIs(t, err, storageErr)
}
