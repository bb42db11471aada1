package primitive

import (
	"fmt"
	"strings"
)

// Mode selects the raw shapes a Date primitive accepts and produces.
type Mode uint8

const (
	// ModeAuto tries the married shape first and falls back to the single shape.
	// Exports use the married shape.
	ModeAuto Mode = iota
	// ModeSingle uses one composed string.
	ModeSingle
	// ModeMarried uses a mapping of component sub-fields.
	ModeMarried
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeMarried:
		return "married"
	default:
		return "auto"
	}
}

// ParseMode parses "single", "married" or "auto". An empty string is ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "single":
		return ModeSingle, nil
	case "married":
		return ModeMarried, nil
	}
	return ModeAuto, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
