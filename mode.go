package histcompare

import (
	"fmt"
	"github.com/pkg/errors"
	"strings"
)

// Mode selects which histogram series are drawn. It applies to both images
// of a comparison.
type Mode int

const (
	// Brightness draws the brightness series only.
	Brightness Mode = iota

	// Color draws the red, green, and blue series.
	Color
)

// String returns the name of the mode as accepted by ParseMode.
func (mode Mode) String() string {
	switch mode {
	case Brightness:
		return "brightness"
	case Color:
		return "color"
	}
	return fmt.Sprintf("Mode(%d)", int(mode))
}

// Toggle returns the other mode.
func (mode Mode) Toggle() Mode {
	if mode == Color {
		return Brightness
	}
	return Color
}

// ParseMode returns the mode with the given name. "value" is accepted as an
// alias for brightness.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "brightness", "value", "b":
		return Brightness, nil
	case "color", "colour", "c":
		return Color, nil
	}
	return Brightness, errors.Errorf("unknown histogram mode %q (use 'brightness' or 'color')", name)
}
