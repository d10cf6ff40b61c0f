package util

import (
	"strconv"
)

// MustParseUint converts a path or query id, returning 0 on failure.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// OptionalUint parses a query filter, nil when empty.
func OptionalUint(s string) *uint {
	if s == "" {
		return nil
	}
	id := MustParseUint(s)
	return &id
}
