package model

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ExtractName returns the declared Name of the document at path.
// Only a direct child of the document root counts as the declaration.
func (m *realModel) ExtractName(path string) (string, error) {
	data, err := m.fs.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	name, found, err := decodeName(bytes.TrimPrefix(data, utf8BOM))
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrParse, path, err)
	}
	if !found || name == "" {
		return "", fmt.Errorf("%w: %s", ErrNameAbsent, path)
	}

	return name, nil
}

// decodeName reads the whole document so that a malformed tail is still
// reported, and keeps the text of the first top-level Name element.
func decodeName(data []byte) (string, bool, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		name    string
		found   bool
		depth   int
		hasRoot bool
	)
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", false, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if depth == 0 && hasRoot {
				return "", false, errors.New("multiple root elements")
			}
			if depth == 1 && !found && t.Name.Local == NameElement {
				var field struct {
					Text string `xml:",chardata"`
				}
				if err := decoder.DecodeElement(&field, &t); err != nil {
					return "", false, err
				}
				name, found = strings.TrimSpace(field.Text), true
				continue
			}
			if depth == 0 {
				hasRoot = true
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}

	if !hasRoot {
		return "", false, errors.New("no root element")
	}
	return name, found, nil
}
