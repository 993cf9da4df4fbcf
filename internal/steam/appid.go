package steam

import (
	"fmt"
	"strconv"
)

// ParseAppID parses a decimal Steam application ID.
func ParseAppID(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid app ID %q: %w", s, err)
	}
	return uint32(id), nil
}
