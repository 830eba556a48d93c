package utils

import (
	"encoding/base64"
	"fmt"
	"strconv"
)

// EncodeCursor wraps the last seen entity id into an opaque pagination token.
// Clients must round-trip the token unmodified.
func EncodeCursor(lastID uint64) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatUint(lastID, 10)))
}

// DecodeCursor unwraps a pagination token produced by EncodeCursor.
func DecodeCursor(cursor string) (uint64, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, fmt.Errorf("malformed cursor: %w", err)
	}
	id, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed cursor: %w", err)
	}
	return id, nil
}
