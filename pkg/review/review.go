// Package review collects elements that require manual inspection.
package review

// Reason explains why an element was put on the review list.
type Reason string

const (
	// ReasonLowReferences is used when too few files reference the element.
	ReasonLowReferences Reason = "low-references"
	// ReasonError is used when processing the element failed.
	ReasonError Reason = "error"
)

// Entry is one review list item.
type Entry struct {
	Name   string
	Reason Reason
	Count  int
	Err    error
}

// List keeps review entries in insertion order. Duplicates are kept.
type List struct {
	entries []Entry
}

// AddLowReferences records an element whose reference count is below threshold.
func (l *List) AddLowReferences(name string, count int) {
	l.entries = append(l.entries, Entry{Name: name, Reason: ReasonLowReferences, Count: count})
}

// AddError records an element whose processing failed.
func (l *List) AddError(name string, err error) {
	l.entries = append(l.entries, Entry{Name: name, Reason: ReasonError, Err: err})
}

// Entries returns a copy of the collected entries.
func (l *List) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// Names returns the element names in insertion order.
func (l *List) Names() []string {
	names := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		names = append(names, e.Name)
	}
	return names
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// Contains reports whether name appears at least once.
func (l *List) Contains(name string) bool {
	for _, e := range l.entries {
		if e.Name == name {
			return true
		}
	}
	return false
}
