package domain

import "fmt"

// Mode tags how a service result was produced.
type Mode string

// Possible result modes
const (
	// ModeLive means the result came from the capability provider.
	ModeLive Mode = "live"

	// ModeDemo means no credential was configured and mock data was returned.
	ModeDemo Mode = "demo"

	// ModeFallback means the provider call or extraction failed and mock
	// data was returned instead.
	ModeFallback Mode = "fallback"
)

// Degraded reports whether the result is mock data.
func (m Mode) Degraded() bool {
	return m == ModeDemo || m == ModeFallback
}

// ParseMode converts a string to a Mode.
func ParseMode(raw string) (Mode, error) {
	switch Mode(raw) {
	case ModeLive, ModeDemo, ModeFallback:
		return Mode(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, raw)
}
