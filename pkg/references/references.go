// Package references derives reference counts from file-grouped search reports.
//
// A report groups hits by file. Each group starts with one metadata line
// (path, size, timestamps, hit count), continues with the matched-line
// excerpts and ends with exactly one blank line. Blank lines never appear
// inside a group, so the number of blank lines equals the number of files
// that mention the searched term.
package references

// BlankLine is the group terminator of a search report.
const BlankLine = "\n"

// DefaultThreshold is the minimum number of referencing files for an element
// to be considered referenced. The defining file always matches its own name,
// so one file means no other file references the element.
const DefaultThreshold = 2

// Count returns the number of distinct files present in a report.
func Count(lines []string) int {
	count := 0
	for _, line := range lines {
		if line == BlankLine {
			count++
		}
	}
	return count
}

// NeedsReview reports whether a reference count is below the threshold.
// A count of zero is flagged as well.
func NeedsReview(count, threshold int) bool {
	return count < threshold
}
