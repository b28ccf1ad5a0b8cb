// Package identifier validates record keys taken from request paths before
// they reach the storage layer.
package identifier

import (
	"errors"
	"strconv"
)

// ErrInvalid reports an identifier that does not match the key format.
var ErrInvalid = errors.New("invalid identifier")

// Format reports whether a raw path segment is structurally a valid key.
// The default matches snowflake keys: 1-19 ASCII digits, no sign, no spaces.
// It is a variable so the key scheme can be swapped without touching callers.
type Format func(string) bool

var DefaultFormat Format = decimalKey

func decimalKey(raw string) bool {
	if len(raw) == 0 || len(raw) > 19 {
		return false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return false
		}
	}
	return true
}

// Parse validates raw against DefaultFormat and returns the numeric key.
// Malformed input fails with ErrInvalid before any I/O is attempted.
func Parse(raw string) (int64, error) {
	if !DefaultFormat(raw) {
		return 0, ErrInvalid
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalid
	}
	return id, nil
}
