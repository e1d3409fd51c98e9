package ratio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r := New(3, 2)
	assert.Equal(t, 1.5, r.Float64())
	assert.Equal(t, 3, r.Num())
	assert.Equal(t, 2, r.Den())
}

func TestNewReduces(t *testing.T) {
	assert.Equal(t, Ratio[int]{numer: 5, denom: 4}, New(10, 8))
}

func TestNewNormalizes(t *testing.T) {
	assert.Equal(t, Ratio[int]{numer: 7, denom: 4}, New(7, 8))
	assert.Equal(t, Ratio[int]{numer: 15, denom: 8}, New(15, 4))
	assert.Equal(t, Ratio[int]{numer: 3, denom: 2}, New(3, 1))
	assert.Equal(t, Ratio[int]{numer: 4, denom: 3}, New(2, 3))
}

func TestOctaveEquivalents(t *testing.T) {
	octave := Ratio[int]{numer: 2, denom: 1}
	assert.Equal(t, Ratio[int]{numer: 1, denom: 1}, New(1, 1))
	assert.Equal(t, octave, New(2, 1))
	assert.Equal(t, octave, New(1, 2))
	assert.Equal(t, octave, New(4, 1))
	assert.Equal(t, octave, New(1, 4))
	assert.Equal(t, octave, New(5, 5))
	assert.Equal(t, octave, New(3, 24))
}

func TestTryInvalid(t *testing.T) {
	_, err := Try(3, 0)
	assert.ErrorIs(t, err, ErrInvalidRatio)
	assert.EqualError(t, err, "3/0: invalid ratio")
	_, err = Try(0, 3)
	assert.ErrorIs(t, err, ErrInvalidRatio)
	_, err = Try(-3, 2)
	assert.ErrorIs(t, err, ErrInvalidRatio)
	assert.Panics(t, func() { New(1, 0) })
}

func TestTryOverflow(t *testing.T) {
	_, err := Try[int8](1, 127)
	assert.ErrorIs(t, err, ErrOverflow)
	r, err := Try[int8](127, 1)
	require.NoError(t, err)
	assert.Equal(t, Ratio[int8]{numer: 127, denom: 64}, r)
}

func TestConstructionIdempotent(t *testing.T) {
	for n := 1; n <= 64; n++ {
		for d := 1; d <= 64; d++ {
			r := New(n, d)
			assert.Equal(t, r, New(r.numer, r.denom), "%d/%d", n, d)
		}
	}
}

func TestConstructionRange(t *testing.T) {
	for n := uint16(1); n <= 100; n++ {
		for d := uint16(1); d <= 100; d++ {
			r := New(n, d)
			assert.True(t, r.IsValid(), "%d/%d -> %v", n, d, r)
			assert.Equal(t, uint16(1), gcd(r.numer, r.denom))
			f := r.Float64()
			assert.True(t, f >= 1 && f <= 2, "%d/%d -> %v", n, d, r)
			if n == 1 && d == 1 {
				assert.True(t, r.IsUnison())
			} else {
				assert.False(t, r.IsUnison(), "%d/%d", n, d)
			}
		}
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, New(7, 6).IsValid())
	assert.False(t, Ratio[int]{}.IsValid())
	assert.False(t, Ratio[int]{numer: 6, denom: 4}.IsValid())
	assert.False(t, Ratio[int]{numer: 3, denom: 4}.IsValid())
	assert.False(t, Ratio[int]{numer: 5, denom: 2}.IsValid())
	assert.False(t, Ratio[int]{numer: 2, denom: 2}.IsValid())
}

func TestMul(t *testing.T) {
	r1 := New(4, 3)
	r2 := New(3, 2)

	assert.Equal(t, Ratio[int]{numer: 2, denom: 1}, Must(r1.Mul(r2)))
	assert.Equal(t, Ratio[int]{numer: 15, denom: 8}, Must(New(3, 2).Mul(New(5, 4))))
	assert.Equal(t, r2, Must(r2.Mul(New(1, 1))))
}

func TestDiv(t *testing.T) {
	r1 := New(4, 3)
	r2 := New(3, 2)

	assert.Equal(t, Ratio[int]{numer: 16, denom: 9}, Must(r1.Div(r2)))
	assert.Equal(t, Ratio[int]{numer: 9, denom: 8}, Must(r2.Div(r1)))
}

func TestMulOverflow(t *testing.T) {
	_, err := New[int8](127, 64).Mul(New[int8](3, 2))
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = New[int8](3, 2).Div(New[int8](127, 64))
	assert.ErrorIs(t, err, ErrOverflow)
	assert.Panics(t, func() { Must(New[int8](127, 64).Mul(New[int8](127, 64))) })
}

func TestComplement(t *testing.T) {
	r1 := New(4, 3)
	r2 := New(3, 2)

	assert.Equal(t, r2, Must(r1.Complement()))
	assert.Equal(t, r1, Must(r2.Neg()))
	assert.Equal(t, Ratio[int]{numer: 8, denom: 5}, Must(New(5, 4).Complement()))
	assert.Equal(t, Ratio[int]{numer: 2, denom: 1}, Must(New(2, 1).Complement()))
	assert.Equal(t, Ratio[int]{numer: 2, denom: 1}, Must(New(1, 1).Complement()))
}

func TestComplementInvolution(t *testing.T) {
	for n := 1; n <= 40; n++ {
		for d := 1; d <= 40; d++ {
			r := New(n, d)
			if r.IsUnison() {
				continue
			}
			assert.Equal(t, r, Must(Must(r.Complement()).Complement()), "%v", r)
		}
	}
}

func TestPow(t *testing.T) {
	r := New(3, 2)

	assert.Equal(t, Ratio[int]{numer: 1, denom: 1}, Must(r.Pow(0)))
	assert.Equal(t, r, Must(r.Pow(1)))
	assert.Equal(t, Ratio[int]{numer: 9, denom: 8}, Must(r.Pow(2)))
	assert.Equal(t, Ratio[int]{numer: 27, denom: 16}, Must(r.Pow(3)))
	assert.Equal(t, Ratio[int]{numer: 16, denom: 9}, Must(r.Pow(-2)))
	assert.Equal(t, Ratio[int]{numer: 4, denom: 3}, Must(r.Pow(-1)))
	assert.Equal(t, Ratio[int]{numer: 1, denom: 1}, Must(New(2, 1).Pow(0)))
	assert.Equal(t, Ratio[int]{numer: 2, denom: 1}, Must(New(2, 1).Pow(5)))
}

func TestPowOverflow(t *testing.T) {
	_, err := New[int8](9, 8).Pow(3)
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = New[int64](3, 2).Pow(40)
	assert.ErrorIs(t, err, ErrOverflow)
	r, err := New[int64](3, 2).Pow(12)
	require.NoError(t, err)
	assert.Equal(t, Ratio[int64]{numer: 531441, denom: 524288}, r)
}

func TestPowExtremeExponents(t *testing.T) {
	r, err := New[int64](1, 1).Pow(math.MaxInt)
	require.NoError(t, err)
	assert.True(t, r.IsUnison())

	_, err = New[int64](1, 1).Pow(math.MinInt)
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = New[int64](3, 2).Pow(math.MinInt)
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = New[int64](3, 2).Pow(math.MaxInt)
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = New[int64](3, 2).Pow(math.MinInt + 1)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestLimit(t *testing.T) {
	assert.Equal(t, 7, New(8, 7).Limit())
	assert.Equal(t, 3, New(9, 8).Limit())
	assert.Equal(t, 5, New(10, 9).Limit())
	assert.Equal(t, 11, New(22, 21).Limit())
	assert.Equal(t, 2, New(2, 1).Limit())
	// degenerate
	assert.Equal(t, 2, New(1, 1).Limit())
}

func TestCents(t *testing.T) {
	assert.Equal(t, 0.0, New(1, 1).Cents())
	assert.Equal(t, 1200.0, New(2, 1).Cents())
	assert.InDelta(t, 701.955, New(3, 2).Cents(), 0.001)
	assert.InDelta(t, 386.314, New(5, 4).Cents(), 0.001)
}

func TestString(t *testing.T) {
	assert.Equal(t, "3/2", New(3, 2).String())
	assert.Equal(t, "2/1", New(1, 2).String())
	assert.Equal(t, "255/128", New[uint8](255, 1).String())
}

func TestFloat64(t *testing.T) {
	assert.Equal(t, 1.5, New(3, 2).Float64())
	assert.Equal(t, 1.25, New(5, 4).Float64())
	assert.Equal(t, 2.0, New(1, 2).Float64())
	assert.InDelta(t, math.Pow(2, 7.0/12), New(3, 2).Float64(), 0.002)
}
