package calculator

import (
	"errors"
	"math"
)

// ErrOverflow is returned when an integer sum does not fit in an int64.
var ErrOverflow = errors.New("integer overflow")

// Calculator is stateless; the zero value is ready to use.
type Calculator struct{}

// New returns a Calculator.
func New() *Calculator { return &Calculator{} }

// Add returns a + b.
func (c *Calculator) Add(a, b float64) float64 {
	return a + b
}

// AddInt returns a + b, or ErrOverflow if the sum leaves the int64 range.
func (c *Calculator) AddInt(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, ErrOverflow
	}
	return a + b, nil
}
