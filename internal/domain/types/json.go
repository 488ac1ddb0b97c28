package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// jsonFloat encodes finite values as JSON numbers and NaN/±Inf as the strings
// "NaN", "+Inf" and "-Inf", which JSON numbers cannot express.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

func (f *jsonFloat) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %s", b)
	}
	*f = jsonFloat(v)
	return nil
}

type entryJSON struct {
	ID      EntryID      `json:"id"`
	Op      Operation    `json:"op"`
	A       jsonFloat    `json:"a"`
	B       jsonFloat    `json:"b"`
	Result  jsonFloat    `json:"result"`
	Integer bool         `json:"integer,omitempty"`
	Ints    *IntOperands `json:"ints,omitempty"`
	At      time.Time    `json:"at"`
}

// MarshalJSON encodes the entry, writing non-finite floats as strings.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryJSON{
		ID:      e.ID,
		Op:      e.Op,
		A:       jsonFloat(e.A),
		B:       jsonFloat(e.B),
		Result:  jsonFloat(e.Result),
		Integer: e.Integer,
		Ints:    e.Ints,
		At:      e.At,
	})
}

// UnmarshalJSON accepts both JSON numbers and the non-finite string forms.
func (e *Entry) UnmarshalJSON(b []byte) error {
	var w entryJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*e = Entry{
		ID:      w.ID,
		Op:      w.Op,
		A:       float64(w.A),
		B:       float64(w.B),
		Result:  float64(w.Result),
		Integer: w.Integer,
		Ints:    w.Ints,
		At:      w.At,
	}
	return nil
}
