package penmap

import (
	"fmt"
	"slices"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// marshalProto encodes m as a google.protobuf.Struct of string values.
// Deterministic marshaling sorts map keys, so equal mappings produce equal
// bytes regardless of insertion order.
func marshalProto(m *Mapping) ([]byte, error) {
	s := &structpb.Struct{Fields: make(map[string]*structpb.Value, m.Len())}
	for k, v := range m.All() {
		s.Fields[k] = structpb.NewStringValue(v)
	}
	return proto.MarshalOptions{Deterministic: true}.Marshal(s)
}

// unmarshalProto decodes a google.protobuf.Struct. The wire map carries no
// order, so keys are returned in numeric OID order.
func unmarshalProto(data []byte) (*Mapping, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMapping, err)
	}

	keys := make([]string, 0, len(s.Fields))
	for k := range s.Fields {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareOIDs)

	m := NewMapping(len(keys))
	for _, k := range keys {
		sv, ok := s.Fields[k].GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, fmt.Errorf("%w: value for %q is not a string", ErrInvalidMapping, k)
		}
		m.Set(k, sv.StringValue)
	}
	return m, nil
}
