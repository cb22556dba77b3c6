// This file contains the Count type preserving raw enrollment tokens.

package querycourse

import (
	"encoding/json"
	"strconv"
)

// Count is an enrollment figure as the upstream delivered it. Counts arrive
// as JSON numbers, digit strings, or null, and the service has been observed
// to switch between representations for the same course. Raw keeps the exact
// token so change detection can compare representations, not just values.
//
// JSON null and an absent field both leave Raw empty; the upstream does not
// distinguish them either.
type Count struct {
	Raw   string // exact JSON token, "" for null or absent
	Value int
	Valid bool // Value is meaningful
}

// NewCount returns a Count holding a known integer value.
func NewCount(v int) Count {
	return Count{Raw: strconv.Itoa(v), Value: v, Valid: true}
}

// UnmarshalJSON captures the raw token and parses it when it is an integer
// or a string of ASCII digits. Everything else is kept but marked invalid.
func (c *Count) UnmarshalJSON(b []byte) error {
	*c = Count{Raw: string(b)}
	if c.Raw == "null" {
		c.Raw = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		// the outer decoder already validated the token
		if json.Unmarshal(b, &s) == nil && isASCIIDigits(s) {
			if v, err := strconv.Atoi(s); err == nil {
				c.Value, c.Valid = v, true
			}
		}
		return nil
	}
	if v, err := strconv.Atoi(c.Raw); err == nil {
		c.Value, c.Valid = v, true
	}
	return nil
}

// MarshalJSON writes the original token back out, so records round-trip
// through the mock backend unchanged.
func (c Count) MarshalJSON() ([]byte, error) {
	if c.Raw == "" {
		return []byte("null"), nil
	}
	return []byte(c.Raw), nil
}

// String returns the display form: the parsed value, or a placeholder dash.
func (c Count) String() string {
	if !c.Valid {
		return "-"
	}
	return strconv.Itoa(c.Value)
}

func isASCIIDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
