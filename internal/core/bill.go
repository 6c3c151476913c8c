package core

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Bill is a named obligation with a signed amount. Name is the store key and
// never changes after creation.
type Bill struct {
	Name   string
	Amount float64
}

var (
	ErrEmptyName     = errors.New("empty bill name")
	ErrInvalidAmount = errors.New("invalid amount")
)

func (b Bill) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return ErrEmptyName
	}
	if !IsFinite(b.Amount) {
		return ErrInvalidAmount
	}
	return nil
}

// String renders a debug-style dump of the bill fields.
func (b Bill) String() string {
	return fmt.Sprintf("Bill { name: %q, amount: %s }", b.Name, FormatAmount(b.Amount))
}

// ParseAmount converts user text into a finite amount.
//
// Plain decimal and exponent forms are accepted: "54.20" -> 54.2, "-3" -> -3,
// "1e3" -> 1000. NaN, infinities, values that overflow float64, hex floats,
// digit separators and the comma decimal separator are rejected.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789.+-eE", r) {
			return 0, ErrInvalidAmount
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !IsFinite(v) {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FormatAmount returns the shortest decimal form that round-trips. NaN and
// infinities render as "NaN", "+Inf" and "-Inf".
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
