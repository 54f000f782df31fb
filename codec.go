package penmap

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Format selects a serialization for a Mapping.
type Format uint8

const (
	FormatJSON  Format = 0 // Indented JSON object, the default
	FormatYAML  Format = 1 // YAML block mapping
	FormatProto Format = 2 // google.protobuf.Struct, binary wire format
)

// Serialization errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidMapping    = errors.New("invalid mapping document")
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatProto:
		return "proto"
	default:
		return "unknown"
	}
}

// Ext returns the conventional file extension for f, including the dot.
func (f Format) Ext() string {
	switch f {
	case FormatYAML:
		return ".yaml"
	case FormatProto:
		return ".pb"
	default:
		return ".json"
	}
}

// ParseFormat returns the Format named by s ("json", "yaml"/"yml",
// "proto"/"pb"). Matching ignores case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "proto", "pb", "protobuf":
		return FormatProto, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Encode writes m to w in format f.
func Encode(w io.Writer, m *Mapping, f Format) error {
	var data []byte
	var err error

	switch f {
	case FormatJSON:
		data, err = marshalJSON(m)
	case FormatYAML:
		data, err = marshalYAML(m)
	case FormatProto:
		data, err = marshalProto(m)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", f, err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", f, err)
	}
	return nil
}

// Decode reads a mapping in format f from r.
func Decode(r io.Reader, f Format) (*Mapping, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f, err)
	}

	switch f {
	case FormatJSON:
		return unmarshalJSON(data)
	case FormatYAML:
		return unmarshalYAML(data)
	case FormatProto:
		return unmarshalProto(data)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
}
