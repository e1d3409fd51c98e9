package ratio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCD(t *testing.T) {
	assert.Equal(t, 4, gcd(8, 12))
	assert.Equal(t, 4, gcd(12, 8))
	assert.Equal(t, 7, gcd(7, 7))
	assert.Equal(t, 3, gcd(9, 3))
	assert.Equal(t, 3, gcd(3, 9))
	assert.Equal(t, 1, gcd(9, 8))
	assert.Equal(t, uint8(5), gcd(uint8(255), uint8(10)))
}

func TestReduce(t *testing.T) {
	n, d := reduce(10, 8)
	assert.Equal(t, [2]int{5, 4}, [2]int{n, d})
	n, d = reduce(36, 24)
	assert.Equal(t, [2]int{3, 2}, [2]int{n, d})
	n, d = reduce(6, 6)
	assert.Equal(t, [2]int{1, 1}, [2]int{n, d})
	n, d = reduce(3, 2)
	assert.Equal(t, [2]int{3, 2}, [2]int{n, d})
}

func TestNormalizePair(t *testing.T) {
	for _, tc := range []struct{ a, b, wantA, wantB int }{
		{3, 2, 3, 2},
		{7, 8, 14, 8},
		{15, 4, 15, 8},
		{1, 1, 1, 1},
		{2, 1, 2, 1},
		{1, 2, 2, 1},
		{4, 1, 4, 2},
		{1, 4, 2, 1},
		{3, 3, 2, 1},
		{5, 20, 2, 1},
		{1, 3, 4, 3},
	} {
		a, b, err := normalizePair(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, [2]int{tc.wantA, tc.wantB}, [2]int{a, b}, "%d/%d", tc.a, tc.b)
	}
}

func TestNormalizePairInvalid(t *testing.T) {
	for _, tc := range [][2]int{{0, 1}, {1, 0}, {0, 0}, {-3, 2}, {3, -2}} {
		_, _, err := normalizePair(tc[0], tc[1])
		assert.ErrorIs(t, err, ErrInvalidRatio, "%v", tc)
	}
}

func TestNormalizePairOverflow(t *testing.T) {
	_, _, err := normalizePair[int8](1, 100)
	assert.ErrorIs(t, err, ErrOverflow)
	_, _, err = normalizePair[uint8](1, 200)
	assert.ErrorIs(t, err, ErrOverflow)
	_, _, err = normalizePair[int64](math.MaxInt64, 1)
	assert.NoError(t, err)
}

func TestGreatestPrimeFactor(t *testing.T) {
	assert.Equal(t, 2, greatestPrimeFactor(8))
	assert.Equal(t, 7, greatestPrimeFactor(7))
	assert.Equal(t, 3, greatestPrimeFactor(9))
	assert.Equal(t, 5, greatestPrimeFactor(10))
	assert.Equal(t, 11, greatestPrimeFactor(22))
	assert.Equal(t, 7, greatestPrimeFactor(21))
	assert.Equal(t, 13, greatestPrimeFactor(2*3*13))
	// degenerate
	assert.Equal(t, 2, greatestPrimeFactor(1))
}

func TestMulChecked(t *testing.T) {
	c, err := mulChecked[int8](11, 11)
	require.NoError(t, err)
	assert.Equal(t, int8(121), c)
	_, err = mulChecked[int8](12, 11)
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = mulChecked[uint8](16, 16)
	assert.ErrorIs(t, err, ErrOverflow)
	u, err := mulChecked[uint8](0, 200)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), u)
	_, err = mulChecked[int64](math.MaxInt64/2+1, 2)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestPowChecked(t *testing.T) {
	c, err := powChecked(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 81, c)
	c, err = powChecked(3, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, c)
	c, err = powChecked(2, 62)
	require.NoError(t, err)
	assert.Equal(t, 1<<62, c)
	_, err = powChecked[int16](3, 10)
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = powChecked[int64](2, 63)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestPowCheckedHugeExponent(t *testing.T) {
	c, err := powChecked[int64](1, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, int64(1), c)
	_, err = powChecked[int64](2, math.MaxInt)
	assert.ErrorIs(t, err, ErrOverflow)
}
