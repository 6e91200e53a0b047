package report

import "sort"

// Record maps each searched element name to the raw lines of its search report.
type Record map[string][]string

// Names returns the element names in sorted order.
func (r Record) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
