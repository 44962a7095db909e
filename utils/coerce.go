package utils

import (
	"strconv"
	"strings"
)

// Numeric is a JSON number that tolerates the loose payloads legacy clients
// send: plain numbers, numeric strings, empty strings and null all decode
// without error. Missing, empty and unparseable values are flagged invalid so
// callers pick their own default instead of failing the request.
type Numeric struct {
	value float64
	valid bool
}

func NewNumeric(v float64) Numeric { return Numeric{value: v, valid: true} }

func (n *Numeric) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = Numeric{}
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if s == "" {
		*n = Numeric{}
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = Numeric{}
		return nil
	}
	*n = Numeric{value: f, valid: true}
	return nil
}

// Valid reports whether the field held a usable number.
func (n Numeric) Valid() bool { return n.valid }

// Or returns the decoded value, or def when the field was missing, empty or
// unparseable.
func (n Numeric) Or(def float64) float64 {
	if !n.valid {
		return def
	}
	return n.value
}
