package calculator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calc/internal/calculator"
)

func TestAdd_OnePlusThree(t *testing.T) {
	calc := calculator.New()
	expected := 4.0

	actual := calc.Add(1, 3)

	assert.Equal(t, expected, actual)
}

func TestAdd_ZeroValueUsable(t *testing.T) {
	var calc calculator.Calculator
	assert.Equal(t, 5.5, calc.Add(2.25, 3.25))
}

func TestAdd_Properties(t *testing.T) {
	calc := calculator.New()
	pairs := [][2]float64{
		{0, 0},
		{1, 3},
		{-7, 7},
		{2.5, -0.5},
		{1e300, 1e300},
		{-1e-300, 4},
		{math.MaxFloat64, 1},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		assert.Equal(t, a+b, calc.Add(a, b), "sum of %v and %v", a, b)
		assert.Equal(t, calc.Add(a, b), calc.Add(b, a), "commutativity for %v, %v", a, b)
		assert.Equal(t, a, calc.Add(a, 0), "identity for %v", a)
	}
}

func TestAdd_NonFinite(t *testing.T) {
	calc := calculator.New()

	assert.True(t, math.IsNaN(calc.Add(math.NaN(), 1)))
	assert.True(t, math.IsInf(calc.Add(math.Inf(1), 1), 1))
	assert.True(t, math.IsNaN(calc.Add(math.Inf(1), math.Inf(-1))))
	assert.True(t, math.IsInf(calc.Add(math.MaxFloat64, math.MaxFloat64), 1))
}

func TestAddInt(t *testing.T) {
	calc := calculator.New()

	tests := []struct {
		name    string
		a, b    int64
		want    int64
		wantErr error
	}{
		{name: "small", a: 1, b: 3, want: 4},
		{name: "negative", a: -10, b: 4, want: -6},
		{name: "max edge", a: math.MaxInt64 - 1, b: 1, want: math.MaxInt64},
		{name: "min edge", a: math.MinInt64 + 1, b: -1, want: math.MinInt64},
		{name: "positive overflow", a: math.MaxInt64, b: 1, wantErr: calculator.ErrOverflow},
		{name: "negative overflow", a: math.MinInt64, b: -1, wantErr: calculator.ErrOverflow},
		{name: "opposite signs never overflow", a: math.MaxInt64, b: math.MinInt64, want: -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calc.AddInt(tc.a, tc.b)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			rev, err := calc.AddInt(tc.b, tc.a)
			require.NoError(t, err)
			assert.Equal(t, got, rev)
		})
	}
}
