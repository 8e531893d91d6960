// Package color models the colors configuration scripts can request and decides
// how much of a request a terminal actually gets to see.
package color

import (
	"fmt"
	"strings"
)

// Ansi is one of the 16 standard terminal colors.
type Ansi uint8

const (
	Black Ansi = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var ansiNames = [16]string{
	"black",
	"red",
	"green",
	"yellow",
	"blue",
	"magenta",
	"cyan",
	"white",
	"bright-black",
	"bright-red",
	"bright-green",
	"bright-yellow",
	"bright-blue",
	"bright-magenta",
	"bright-cyan",
	"bright-white",
}

// String returns the token scripts use for the color, e.g. "bright-cyan".
func (a Ansi) String() string {
	if int(a) < len(ansiNames) {
		return ansiNames[a]
	}
	return fmt.Sprintf("ansi(%d)", uint8(a))
}

// ParseAnsi converts a color token back into an Ansi value. Underscores are
// accepted in place of dashes.
func ParseAnsi(s string) (Ansi, error) {
	name := strings.ReplaceAll(s, "_", "-")
	for i, n := range ansiNames {
		if n == name {
			return Ansi(i), nil
		}
	}
	return 0, fmt.Errorf("unknown ANSI color %q", s)
}

type kind uint8

const (
	kindAnsi kind = iota
	kindRGB
)

// Color is either one of the 16 ANSI colors or a 24-bit RGB triplet. The zero
// value is ANSI black.
type Color struct {
	kind    kind
	ansi    Ansi
	r, g, b uint8
}

// FromAnsi wraps an ANSI color.
func FromAnsi(a Ansi) Color {
	return Color{kind: kindAnsi, ansi: a}
}

// RGB builds a true-color value.
func RGB(r, g, b uint8) Color {
	return Color{kind: kindRGB, r: r, g: g, b: b}
}

// IsRGB reports whether c carries a 24-bit value.
func (c Color) IsRGB() bool { return c.kind == kindRGB }

// Ansi returns the ANSI color and true when c is an ANSI color.
func (c Color) Ansi() (Ansi, bool) {
	if c.kind != kindAnsi {
		return 0, false
	}
	return c.ansi, true
}

// Channels returns the RGB channels and true when c is an RGB color.
func (c Color) Channels() (r, g, b uint8, ok bool) {
	if c.kind != kindRGB {
		return 0, 0, 0, false
	}
	return c.r, c.g, c.b, true
}

// ToAnsi degrades c to the closest of the 16 ANSI colors. ANSI colors are
// returned as they are.
func (c Color) ToAnsi() Ansi {
	if c.kind == kindRGB {
		return AnsiFromRGB(c.r, c.g, c.b)
	}
	return c.ansi
}

func (c Color) String() string {
	if c.kind == kindRGB {
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	}
	return c.ansi.String()
}
