package types

import (
	"fmt"
	"strconv"
	"time"
)

// EntryID uniquely identifies a recorded computation.
type EntryID string

// String returns the string form of the identifier.
func (id EntryID) String() string { return string(id) }

// Operation names the arithmetic performed.
type Operation string

// String returns the string form of the operation.
func (op Operation) String() string { return string(op) }

// OpAdd is the only operation the calculator performs.
const OpAdd Operation = "add"

// IntOperands holds the exact values of a checked integer computation.
type IntOperands struct {
	A      int64 `json:"a"`
	B      int64 `json:"b"`
	Result int64 `json:"result"`
}

// Entry is one computation as recorded in the history.
//
// A, B and Result are always set and may be non-finite. Integer entries also
// carry Ints, since float64 cannot represent every int64. MarshalJSON writes
// non-finite values as strings.
type Entry struct {
	ID      EntryID
	Op      Operation
	A       float64
	B       float64
	Result  float64
	Integer bool
	Ints    *IntOperands
	At      time.Time
}

// Sum returns the result as display text.
func (e Entry) Sum() string {
	if e.Ints != nil {
		return strconv.FormatInt(e.Ints.Result, 10)
	}
	return formatFloat(e.Result)
}

// String renders the entry as "a + b = result".
func (e Entry) String() string {
	if e.Ints != nil {
		return fmt.Sprintf("%d + %d = %d", e.Ints.A, e.Ints.B, e.Ints.Result)
	}
	return fmt.Sprintf("%s + %s = %s", formatFloat(e.A), formatFloat(e.B), formatFloat(e.Result))
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
