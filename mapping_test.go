package penmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapping_SetKeepsFirstPosition(t *testing.T) {
	m := NewMapping(0)
	assert.False(t, m.Set("a", "1"))
	assert.False(t, m.Set("b", "2"))
	assert.True(t, m.Set("a", "3"))

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	assert.Equal(t, "3", m.Get("a"))
	assert.Equal(t, 2, m.Len())
}

func TestMapping_ZeroValue(t *testing.T) {
	var m Mapping
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Get("a"))

	m.Set("a", "1")
	org, ok := m.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "1", org)
}

func TestMapping_Nil(t *testing.T) {
	var m *Mapping
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Get("a"))
	assert.Nil(t, m.Keys())
	assert.Empty(t, m.Map())

	_, ok := m.Lookup("a")
	assert.False(t, ok)

	for range m.All() {
		require.FailNow(t, "nil mapping yielded an entry")
	}
}

func TestMapping_KeysIsACopy(t *testing.T) {
	m := NewMapping(1)
	m.Set("a", "1")
	keys := m.Keys()
	keys[0] = "changed"
	assert.Equal(t, []string{"a"}, m.Keys())
}

func TestMapping_AllStopsEarly(t *testing.T) {
	m := NewMapping(3)
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("c", "3")

	var seen []string
	for k := range m.All() {
		seen = append(seen, k)
		if k == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestMapping_Equal(t *testing.T) {
	a := NewMapping(2)
	a.Set("x", "1")
	a.Set("y", "2")

	b := NewMapping(2)
	b.Set("y", "2")
	b.Set("x", "1")

	assert.True(t, a.Equal(b), "order must not matter")

	b.Set("y", "changed")
	assert.False(t, a.Equal(b))

	c := NewMapping(1)
	c.Set("x", "1")
	assert.False(t, a.Equal(c))

	var empty *Mapping
	assert.True(t, empty.Equal(NewMapping(0)))
}
