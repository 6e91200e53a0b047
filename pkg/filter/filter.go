// Package filter decides which elements are excluded from reference analysis.
package filter

import "strings"

// DefaultSuffixes lists name suffixes of self-contained artifacts (extensions and
// model descriptors) that are not expected to be referenced elsewhere.
var DefaultSuffixes = []string{"_Extension", ".rsmGCX", ".GCX"}

// Filter excludes element names ending with one of its suffixes.
type Filter struct {
	suffixes []string
}

// New creates a Filter. Empty suffixes are ignored.
func New(suffixes []string) Filter {
	kept := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return Filter{suffixes: kept}
}

// NewDefault creates a Filter with DefaultSuffixes.
func NewDefault() Filter {
	return New(DefaultSuffixes)
}

// ShouldSkip reports whether name must be excluded from analysis.
func (f Filter) ShouldSkip(name string) bool {
	_, ok := f.MatchedSuffix(name)
	return ok
}

// MatchedSuffix returns the first configured suffix name ends with.
func (f Filter) MatchedSuffix(name string) (string, bool) {
	for _, s := range f.suffixes {
		if strings.HasSuffix(name, s) {
			return s, true
		}
	}
	return "", false
}

// Suffixes returns a copy of the configured suffixes.
func (f Filter) Suffixes() []string {
	return append([]string(nil), f.suffixes...)
}
