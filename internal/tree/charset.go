package tree

import (
	"fmt"
	"strings"
)

// Charset holds the branch segments a tree is drawn with. All three segments
// should have the same display width.
type Charset struct {
	// Depth precedes every entry.
	Depth string
	// Breadth continues the column of an ancestor that has later siblings.
	Breadth string
	// Indent fills the column of an ancestor that was the last of its siblings.
	Indent string
}

const emptyText = "    "

var (
	// Standard uses box-drawing characters. The breadth padding is U+00A0 so
	// that copied trees keep their alignment.
	Standard = Charset{
		Depth:   "├── ",
		Breadth: "│\u00a0\u00a0 ",
		Indent:  "    ",
	}

	// ASCII draws with plain ASCII for terminals without box-drawing glyphs.
	ASCII = Charset{
		Depth:   "|-- ",
		Breadth: "|   ",
		Indent:  "    ",
	}

	// Empty draws no branches at all; only the indentation remains.
	Empty = Charset{
		Depth:   emptyText,
		Breadth: emptyText,
		Indent:  emptyText,
	}
)

// CharsetNames lists the names CharsetByName accepts.
var CharsetNames = []string{"standard", "ascii", "empty"}

// CharsetByName returns the named charset. An empty name is Standard.
func CharsetByName(name string) (Charset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "standard":
		return Standard, nil
	case "ascii":
		return ASCII, nil
	case "empty":
		return Empty, nil
	}
	return Charset{}, fmt.Errorf("unknown charset %q: must be one of %s", name, strings.Join(CharsetNames, ", "))
}
