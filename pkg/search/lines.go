package search

import (
	"bytes"
	"strings"
)

// SplitLines splits a raw report into lines that keep their "\n" terminator.
// CRLF terminators are normalized so Windows reports yield the same sentinels.
func SplitLines(data []byte) []string {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	if len(data) == 0 {
		return nil
	}

	lines := strings.SplitAfter(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
