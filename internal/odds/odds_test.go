package odds

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/bettrack/internal/models"
)

func TestPotentialWinPositiveOdds(t *testing.T) {
	win, err := PotentialWin(150, 100)
	require.NoError(t, err)
	assert.InDelta(t, 150.0, win, 1e-9)
}

func TestPotentialWinNegativeOdds(t *testing.T) {
	win, err := PotentialWin(-110, 110)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, win, 1e-9)
}

func TestPotentialWinEvenMoney(t *testing.T) {
	win, err := PotentialWin(100, 50)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, win, 1e-9)

	win, err = PotentialWin(-100, 50)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, win, 1e-9)
}

func TestPotentialWinZeroOddsRejected(t *testing.T) {
	_, err := PotentialWin(0, 100)
	assert.ErrorIs(t, err, models.ErrInvalidOdds)
}

func TestPotentialWinNonFiniteOddsRejected(t *testing.T) {
	for _, odds := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := PotentialWin(odds, 100)
		assert.ErrorIs(t, err, models.ErrInvalidOdds)
	}
}

func TestPotentialWinInvalidAmountRejected(t *testing.T) {
	for _, amount := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		_, err := PotentialWin(150, amount)
		assert.ErrorIs(t, err, models.ErrInvalidAmount)
	}
}

func TestImpliedProbability(t *testing.T) {
	assert.InDelta(t, 0.4, ImpliedProbability(150), 1e-9)
	assert.InDelta(t, 0.6, ImpliedProbability(-150), 1e-9)
	assert.InDelta(t, 0.5, ImpliedProbability(100), 1e-9)
	assert.Equal(t, 0.0, ImpliedProbability(0))
}

func TestToDecimal(t *testing.T) {
	dec, err := ToDecimal(150)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, dec, 1e-9)

	dec, err = ToDecimal(-110)
	require.NoError(t, err)
	assert.InDelta(t, 1.9090909, dec, 1e-6)

	_, err = ToDecimal(0)
	assert.ErrorIs(t, err, models.ErrInvalidOdds)
}

func TestFormatAmerican(t *testing.T) {
	assert.Equal(t, "+150", FormatAmerican(150))
	assert.Equal(t, "-110", FormatAmerican(-110))
}
