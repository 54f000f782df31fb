package penmap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const jsonIndent = "    "

// MarshalJSON encodes m as a compact JSON object in insertion order.
// Non-ASCII text is written literally and HTML characters are not escaped.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	var out bytes.Buffer
	out.WriteByte('{')
	i := 0
	for k, v := range m.All() {
		if i > 0 {
			out.WriteByte(',')
		}
		i++
		for j, s := range [2]string{k, v} {
			buf.Reset()
			if err := enc.Encode(s); err != nil {
				return nil, err
			}
			// Encode terminates each value with a newline.
			out.Write(bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}))
			if j == 0 {
				out.WriteByte(':')
			}
		}
	}
	out.WriteByte('}')
	return out.Bytes(), nil
}

// UnmarshalJSON replaces the contents of m with a JSON object of strings,
// keeping document order.
func (m *Mapping) UnmarshalJSON(data []byte) error {
	decoded, err := unmarshalJSON(data)
	if err != nil {
		return err
	}
	*m = *decoded
	return nil
}

func marshalJSON(m *Mapping) ([]byte, error) {
	compact, err := m.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", jsonIndent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func unmarshalJSON(data []byte) (*Mapping, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMapping, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: expected object, got %v", ErrInvalidMapping, tok)
	}

	m := NewMapping(0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidMapping, err)
		}
		key := tok.(string) // object keys are always strings

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("%w: value for %q: %w", ErrInvalidMapping, key, err)
		}
		org, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: value for %q is %T, want string", ErrInvalidMapping, key, value)
		}
		m.Set(key, org)
	}

	// Closing brace, then nothing else.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMapping, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after object", ErrInvalidMapping)
	}
	return m, nil
}
