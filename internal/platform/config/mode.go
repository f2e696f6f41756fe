package config

import (
	"fmt"
	"strings"
)

// Mode selects the build/runtime profile of the site.
type Mode string

const (
	// ModeDevelopment serves from the root path with permissive policies.
	ModeDevelopment Mode = "development"
	// ModeProduction serves under the deploy base path with strict policies.
	ModeProduction Mode = "production"
)

// ParseMode normalizes a mode string. Empty input resolves to development.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "dev", "development":
		return ModeDevelopment, nil
	case "prod", "production":
		return ModeProduction, nil
	default:
		return "", fmt.Errorf("unknown mode %q", raw)
	}
}

// IsProduction reports whether m is the production profile.
func (m Mode) IsProduction() bool {
	return m == ModeProduction
}

// String returns the canonical mode name.
func (m Mode) String() string {
	if m == "" {
		return string(ModeDevelopment)
	}
	return string(m)
}

// UnmarshalText lets env and flag parsing accept mode aliases.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
