package color

import (
	"io"

	"github.com/muesli/termenv"
)

// SupportsColor reports whether w is a destination that renders color. Writers
// that are not terminals never do, unless CLICOLOR_FORCE says otherwise;
// NO_COLOR always turns color off.
func SupportsColor(w io.Writer) bool {
	return termenv.NewOutput(w).EnvColorProfile() != termenv.Ascii
}
