package types_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"calc/internal/domain/types"
)

func TestEntry_String(t *testing.T) {
	e := types.Entry{Op: types.OpAdd, A: 1, B: 3, Result: 4}
	assert.Equal(t, "1 + 3 = 4", e.String())
	assert.Equal(t, "4", e.Sum())

	e = types.Entry{A: 0.1, B: 0.2, Result: 0.1 + 0.2}
	assert.Equal(t, "0.1 + 0.2 = 0.30000000000000004", e.String())

	e = types.Entry{
		Integer: true,
		Ints:    &types.IntOperands{A: math.MaxInt64 - 1, B: 1, Result: math.MaxInt64},
	}
	assert.Equal(t, "9223372036854775806 + 1 = 9223372036854775807", e.String())
	assert.Equal(t, "9223372036854775807", e.Sum())
}
