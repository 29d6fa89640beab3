package booking

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestCalculateAmountFlatRate(t *testing.T) {
    e, _ := newTestEngine()

    got, err := e.CalculateAmount(3)
    require.NoError(t, err)
    assert.Equal(t, uint32(3*DefaultRatePerHour), got)
}

// The fare is linear in the duration at a fixed rate.
func TestCalculateAmountLinearity(t *testing.T) {
    e, _ := newTestEngine(WithRate(25))

    for _, d := range []uint32{1, 2, 4, 12} {
        single, err := e.CalculateAmount(d)
        require.NoError(t, err)
        double, err := e.CalculateAmount(2 * d)
        require.NoError(t, err)
        assert.Equal(t, 2*single, double)
    }
}

func TestCalculateAmountRejectsZeroDuration(t *testing.T) {
    e, _ := newTestEngine()

    _, err := e.CalculateAmount(0)
    assert.ErrorIs(t, err, ErrInvalidDuration)
}
