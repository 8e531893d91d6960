package color

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Choice is the user's policy for how much color to emit.
type Choice int

const (
	// ChoiceAuto colors output only when the destination supports it.
	ChoiceAuto Choice = iota
	// ChoiceOn always colors output.
	ChoiceOn
	// ChoiceAnsi always colors output but limits it to the 16 ANSI colors.
	ChoiceAnsi
	// ChoiceOff never colors output.
	ChoiceOff
)

// ValidChoices lists the accepted tokens, in the order error messages show them.
var ValidChoices = []string{"auto", "on", "off", "ansi"}

// ChoiceError reports a value that is not a color choice. Type is the type name
// of the rejected value ("string" for an unknown token).
type ChoiceError struct {
	Value string
	Type  string
}

func (e *ChoiceError) Error() string {
	if e.Type != "" && e.Type != "string" {
		return fmt.Sprintf("invalid color choice of type %s: must be one of %q or nil", e.Type, ValidChoices)
	}
	return fmt.Sprintf("invalid color choice %q: must be one of %q or nil", e.Value, ValidChoices)
}

// ParseChoice converts one of "auto", "on", "off" or "ansi". Matching is exact.
func ParseChoice(s string) (Choice, error) {
	switch s {
	case "auto":
		return ChoiceAuto, nil
	case "on":
		return ChoiceOn, nil
	case "off":
		return ChoiceOff, nil
	case "ansi":
		return ChoiceAnsi, nil
	}
	return ChoiceAuto, &ChoiceError{Value: s, Type: "string"}
}

func (c Choice) String() string {
	switch c {
	case ChoiceOn:
		return "on"
	case ChoiceAnsi:
		return "ansi"
	case ChoiceOff:
		return "off"
	default:
		return "auto"
	}
}

// Set implements flag.Value.
func (c *Choice) Set(s string) error {
	parsed, err := ParseChoice(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Render returns display decorated with the optional foreground and background
// colors. supportsColor is only consulted for ChoiceAuto.
func (c Choice) Render(display string, fg, bg *Color, supportsColor bool) string {
	// Must stay ahead of every other rule.
	if c == ChoiceOff || (fg == nil && bg == nil) {
		return display
	}
	switch c {
	case ChoiceAuto:
		if !supportsColor {
			return display
		}
		return paint(display, fg, bg)
	case ChoiceAnsi:
		return paint(display, degrade(fg), degrade(bg))
	default:
		return paint(display, fg, bg)
	}
}

// Write renders display to w, probing w for color support when c is ChoiceAuto.
func (c Choice) Write(w io.Writer, display string, fg, bg *Color) error {
	supported := false
	if c == ChoiceAuto && (fg != nil || bg != nil) {
		supported = SupportsColor(w)
	}
	_, err := io.WriteString(w, c.Render(display, fg, bg, supported))
	return err
}

func degrade(c *Color) *Color {
	if c == nil {
		return nil
	}
	ansi := FromAnsi(c.ToAnsi())
	return &ansi
}

func paint(display string, fg, bg *Color) string {
	style := termenv.String(display)
	if fg != nil {
		style = style.Foreground(termColor(*fg))
	}
	if bg != nil {
		style = style.Background(termColor(*bg))
	}
	return style.String()
}

func termColor(c Color) termenv.Color {
	if r, g, b, ok := c.Channels(); ok {
		return trueColor{r, g, b}
	}
	return termenv.ANSIColor(c.ToAnsi())
}

// trueColor emits exact channel values; termenv.RGBColor round-trips through
// floats.
type trueColor struct{ r, g, b uint8 }

func (t trueColor) Sequence(bg bool) string {
	prefix := "38"
	if bg {
		prefix = "48"
	}
	return fmt.Sprintf("%s;2;%d;%d;%d", prefix, t.r, t.g, t.b)
}
