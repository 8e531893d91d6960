// Package glob memoizes compiled glob patterns so configuration scripts can test
// every entry of a tree against the same rules without recompiling them.
package glob

import (
	"strings"
	"sync"

	"github.com/gobwas/glob"
)

// Cache maps raw pattern strings to their compiled form. A nil value records a
// pattern that failed to compile, so it is never compiled again.
type Cache struct {
	mu       sync.RWMutex
	patterns map[string]glob.Glob
}

// Default is shared by every scripting session in the process.
var Default = New()

// New creates an empty cache.
func New() *Cache {
	return &Cache{patterns: make(map[string]glob.Glob)}
}

// Matches reports whether path matches pattern. "*" and "?" also match path
// separators. "**" must be a whole path component, and "**/" also matches zero
// directories, so "**/Makefile" matches "Makefile". A pattern that does not
// compile matches nothing.
func (c *Cache) Matches(pattern, path string) bool {
	c.mu.RLock()
	compiled, ok := c.patterns[pattern]
	c.mu.RUnlock()
	if ok {
		return compiled != nil && compiled.Match(path)
	}

	// Compile outside the lock. Two callers racing on the same pattern both
	// store an equivalent result.
	compiled = compile(pattern)

	c.mu.Lock()
	c.patterns[pattern] = compiled
	c.mu.Unlock()

	return compiled != nil && compiled.Match(path)
}

// Len returns the number of memoized patterns, including failed ones.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.patterns)
}

// maxRecursive bounds the "**/" components of one pattern. Each one doubles the
// number of compiled alternatives.
const maxRecursive = 8

// compile returns nil for invalid patterns. A panic inside the compiler is
// treated the same way.
func compile(pattern string) (g glob.Glob) {
	defer func() {
		if recover() != nil {
			g = nil
		}
	}()
	recursive, ok := recursiveComponents(pattern)
	if !ok || len(recursive) > maxRecursive {
		return nil
	}
	if len(recursive) == 0 {
		compiled, err := glob.Compile(pattern)
		if err != nil {
			return nil
		}
		return compiled
	}

	var alternatives anyOf
	for _, variant := range expand(pattern, recursive) {
		compiled, err := glob.Compile(variant)
		if err != nil {
			return nil
		}
		alternatives = append(alternatives, compiled)
	}
	return alternatives
}

// anyOf matches when any of its globs does.
type anyOf []glob.Glob

func (a anyOf) Match(s string) bool {
	for _, g := range a {
		if g.Match(s) {
			return true
		}
	}
	return false
}

// recursiveComponents returns the offsets of every "**/" in pattern. It
// reports false when a "**" is not a whole component or when more than two
// stars are adjacent. Character classes and escaped characters are skipped.
func recursiveComponents(pattern string) ([]int, bool) {
	var offsets []int
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case '[':
			if end := strings.IndexByte(pattern[i+1:], ']'); end >= 0 {
				i += end + 1
			}
		case '*':
			start := i
			for i+1 < len(pattern) && pattern[i+1] == '*' {
				i++
			}
			switch n := i - start + 1; {
			case n == 1:
			case n > 2:
				return nil, false
			default:
				if start > 0 && !strings.ContainsRune("/{,", rune(pattern[start-1])) {
					return nil, false
				}
				if i+1 == len(pattern) || strings.ContainsRune("},", rune(pattern[i+1])) {
					continue
				}
				if pattern[i+1] != '/' {
					return nil, false
				}
				offsets = append(offsets, start)
			}
		}
	}
	return offsets, true
}

// expand returns every variant of pattern where each "**/" at the given
// offsets is either kept or dropped.
func expand(pattern string, offsets []int) []string {
	variants := []string{""}
	last := 0
	for _, off := range offsets {
		lit := pattern[last:off]
		next := make([]string, 0, 2*len(variants))
		for _, v := range variants {
			next = append(next, v+lit+"**/", v+lit)
		}
		variants = next
		last = off + len("**/")
	}
	for i := range variants {
		variants[i] += pattern[last:]
	}
	return variants
}
