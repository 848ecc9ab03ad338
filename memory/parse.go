package memory

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIntList parses comma-separated integers such as "100, 500,-200".
// Whitespace around items is ignored; empty items are rejected.
func ParseIntList(text string) ([]int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrInvalidInput("ParseIntList", "empty list", nil)
	}

	items := strings.Split(text, ",")
	values := make([]int, 0, len(items))
	for i, item := range items {
		v, err := strconv.Atoi(strings.TrimSpace(item))
		if err != nil {
			return nil, ErrInvalidInput("ParseIntList", fmt.Sprintf("item %d (%q) is not an integer", i+1, item), err)
		}
		values = append(values, v)
	}
	return values, nil
}

// ParseInt parses a single integer scalar
func ParseInt(text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, ErrInvalidInput("ParseInt", fmt.Sprintf("%q is not an integer", text), err)
	}
	return v, nil
}

// FormatIntList renders values the way ParseIntList reads them
func FormatIntList(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
