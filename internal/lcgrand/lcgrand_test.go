package lcgrand_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathanmweiss/go-rsgf2m/field"
	"github.com/jonathanmweiss/go-rsgf2m/internal/lcgrand"
)

func TestSameSeedReproducesSameSequence(t *testing.T) {
	a := lcgrand.New(1)
	b := lcgrand.New(1)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Int(0, 1000), b.Int(0, 1000))
	}
}

func TestIntStaysInRange(t *testing.T) {
	r := lcgrand.New(42)
	for i := 0; i < 1000; i++ {
		v := r.Int(10, 20)
		assert.GreaterOrEqual(t, v, uint32(10))
		assert.LessOrEqual(t, v, uint32(20))
	}
}

func TestElemStaysInField(t *testing.T) {
	f, err := field.NewField(4)
	require.NoError(t, err)

	r := lcgrand.New(7)
	for i := 0; i < 1000; i++ {
		e := r.Elem(f)
		assert.LessOrEqual(t, uint32(e), f.MaxNonZero())

		ne := r.NonZeroElem(f)
		assert.NotEqual(t, field.Exp(0), ne)
	}
}

func TestPolyEqualIgnoresTrailingZeroes(t *testing.T) {
	a := []field.Exp{1, 2, 3}
	b := []field.Exp{1, 2, 3, 0, 0}
	assert.True(t, lcgrand.PolyEqual(a, b))
	assert.True(t, lcgrand.PolyEqual(b, a))

	c := []field.Exp{1, 2, 3, 0, 1}
	assert.False(t, lcgrand.PolyEqual(a, c))
}
