// Package id generates opaque identifiers for stored records and request
// correlation.
package id

import (
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Length is the size of every generated identifier.
const Length = 26

var lowerBase32 = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

// NewID returns a random UUID as Length lowercase base32 characters, safe for
// URLs, file names and log fields.
func NewID() (string, error) {
	value, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return lowerBase32.EncodeToString(value[:]), nil
}

// Valid reports whether raw has the shape NewID produces.
func Valid(raw string) bool {
	if len(raw) != Length || strings.ToLower(raw) != raw {
		return false
	}
	decoded, err := lowerBase32.DecodeString(raw)
	return err == nil && len(decoded) == len(uuid.UUID{})
}
