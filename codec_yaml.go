package penmap

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	yamlIndent  = 4
	yamlStrTag  = "!!str"
	yamlNullTag = "!!null"
)

// marshalYAML builds the document from nodes so entries keep mapping order.
func marshalYAML(m *Mapping) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range m.All() {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: yamlStrTag, Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: yamlStrTag, Value: v},
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func unmarshalYAML(data []byte) (*Mapping, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMapping, err)
	}

	// An empty document is an empty mapping.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return NewMapping(0), nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: expected mapping at line %d", ErrInvalidMapping, root.Line)
	}

	m := NewMapping(len(root.Content) / 2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if !isYAMLString(key) {
			return nil, fmt.Errorf("%w: line %d: key must be a scalar", ErrInvalidMapping, key.Line)
		}
		if !isYAMLString(value) {
			return nil, fmt.Errorf("%w: line %d: value for %q must be a scalar", ErrInvalidMapping, value.Line, key.Value)
		}
		m.Set(key.Value, value.Value)
	}
	return m, nil
}

// isYAMLString reports whether n is a non-null scalar.
func isYAMLString(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() != yamlNullTag
}
