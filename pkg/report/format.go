package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the serialization of a persisted record.
type Format string

const (
	// FormatJSON is the default format, indented with sorted keys.
	FormatJSON Format = "json"
	// FormatYAML is the YAML format.
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension. Paths without
// extension use JSON.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".txt", "":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func encode(format Format, record Record) ([]byte, error) {
	if record == nil {
		record = Record{}
	}

	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		encoder := json.NewEncoder(&buf)
		// Excerpts are XML; keep them readable
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "    ")
		if err := encoder.Encode(record); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatYAML:
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(yamlNode(record)); err != nil {
			return nil, err
		}
		if err := encoder.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func decode(format Format, data []byte) (Record, error) {
	record := Record{}

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if record == nil {
		record = Record{}
	}
	return record, nil
}

// yamlNode renders record with double-quoted lines so that a bare "\n"
// terminator survives decoding.
func yamlNode(record Record) *yaml.Node {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range record.Names() {
		lines := &yaml.Node{Kind: yaml.SequenceNode}
		for _, line := range record[name] {
			lines.Content = append(lines.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   "!!str",
				Style: yaml.DoubleQuotedStyle,
				Value: line,
			})
		}
		root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}, lines)
	}
	return root
}
