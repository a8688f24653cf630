package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ID is a 64-bit row identifier. It serializes to a decimal string in JSON
// so values above 2^53 survive JavaScript clients without precision loss.
type ID int64

// ParseID parses a decimal-digit path parameter into an ID
func ParseID(s string) (ID, error) {
	if s == "" {
		return 0, fmt.Errorf("empty id")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid id: %q", s)
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id: %q", s)
	}
	return ID(n), nil
}

// String returns the decimal form
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// MarshalJSON serializes the ID as a decimal string
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.String() + `"`), nil
}

// UnmarshalJSON accepts both string and number forms
func (id *ID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id: %s", data)
	}
	*id = ID(n)
	return nil
}
