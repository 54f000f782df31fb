package penmap

import "iter"

// Mapping maps enterprise OIDs (".1.3.6.1.4.1.<number>") to organization
// names.
//
// Keys keep the order in which they were first set. Overwriting an existing
// key replaces its value without moving it. Serializers emit entries in this
// order, so output for a given registry is reproducible.
//
// The zero value is an empty mapping ready to use.
type Mapping struct {
	keys []string
	orgs map[string]string
}

// NewMapping returns an empty mapping with room for n entries.
func NewMapping(n int) *Mapping {
	return &Mapping{
		keys: make([]string, 0, n),
		orgs: make(map[string]string, n),
	}
}

// Set stores org under key, overwriting any existing value.
// It reports whether key was already present.
func (m *Mapping) Set(key, org string) (replaced bool) {
	if m.orgs == nil {
		m.orgs = make(map[string]string)
	}
	if _, ok := m.orgs[key]; ok {
		m.orgs[key] = org
		return true
	}
	m.keys = append(m.keys, key)
	m.orgs[key] = org
	return false
}

// Get returns the organization stored under key, or "" if absent.
func (m *Mapping) Get(key string) string {
	if m == nil {
		return ""
	}
	return m.orgs[key]
}

// Lookup returns the organization stored under key and whether it exists.
func (m *Mapping) Lookup(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	org, ok := m.orgs[key]
	return org, ok
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// All iterates over entries in insertion order.
func (m *Mapping) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.orgs[k]) {
				return
			}
		}
	}
}

// Map returns the entries as a plain map.
func (m *Mapping) Map() map[string]string {
	out := make(map[string]string, m.Len())
	for k, v := range m.All() {
		out[k] = v
	}
	return out
}

// Equal reports whether m and other hold the same keys and values.
// Insertion order is ignored.
func (m *Mapping) Equal(other *Mapping) bool {
	if m.Len() != other.Len() {
		return false
	}
	for k, v := range m.All() {
		if ov, ok := other.Lookup(k); !ok || ov != v {
			return false
		}
	}
	return true
}
