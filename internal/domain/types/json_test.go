package types_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calc/internal/domain/types"
)

func TestEntryJSON_NonFinite(t *testing.T) {
	in := types.Entry{
		ID:     "e1",
		Op:     types.OpAdd,
		A:      math.MaxFloat64,
		B:      math.Inf(-1),
		Result: math.NaN(),
		At:     time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
	}

	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"b":"-Inf"`)
	assert.Contains(t, string(b), `"result":"NaN"`)

	var out types.Entry
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, math.MaxFloat64, out.A)
	assert.True(t, math.IsInf(out.B, -1))
	assert.True(t, math.IsNaN(out.Result))
	assert.Equal(t, in.At, out.At)
}

func TestEntryJSON_FiniteStaysNumeric(t *testing.T) {
	b, err := json.Marshal(types.Entry{A: 1, B: 3, Result: 4})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"result":4`)
	assert.NotContains(t, string(b), `"integer"`)

	var out types.Entry
	require.NoError(t, json.Unmarshal([]byte(`{"a":"+Inf","b":1,"result":"Inf"}`), &out))
	assert.True(t, math.IsInf(out.A, 1))
	assert.True(t, math.IsInf(out.Result, 1))

	require.Error(t, json.Unmarshal([]byte(`{"a":"abc"}`), &out))
}
