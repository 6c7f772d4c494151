package aggregate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tuannh982/aggregate-map/collections"
)

func TestTreeMapInsert(t *testing.T) {
	m := NewTreeMap[string, string](collections.NewVector[string])
	require.Equal(t, 0, m.Size())
	require.Equal(t, true, m.IsEmpty())

	m.Insert("dog", "Terry")
	m.Insert("cat", "Jonathan")
	m.Insert("dog", "Zamboni")
	m.Insert("dog", "Priscilla")

	require.Equal(t, 2, m.Size())
	require.Equal(t, false, m.IsEmpty())
	require.Equal(t, true, m.Contains("dog"))
	require.Equal(t, false, m.Contains("bird"))

	dogs, ok := m.Get("dog")
	require.Equal(t, true, ok)
	require.Equal(t, []string{"Terry", "Zamboni", "Priscilla"}, dogs.Entries())

	birds, ok := m.Get("bird")
	require.Equal(t, false, ok)
	require.Nil(t, birds)
}

func TestTreeMapOrdering(t *testing.T) {
	m := NewTreeMap[string, int](collections.NewVector[int])
	m.Insert("banana", 2)
	m.Insert("apple", 1)
	m.Insert("cherry", 3)
	m.Insert("apple", 4)

	require.Equal(t, []string{"apple", "banana", "cherry"}, m.Keys())

	keys := make([]string, 0, m.Size())
	for key, values := range m.All() {
		keys = append(keys, key)
		require.Equal(t, false, values.IsEmpty())
	}
	require.Equal(t, []string{"apple", "banana", "cherry"}, keys)

	values := m.Values()
	require.Equal(t, 3, len(values))
	require.Equal(t, []int{1, 4}, values[0].Entries())

	minKey, minValues, ok := m.Min()
	require.Equal(t, true, ok)
	require.Equal(t, "apple", minKey)
	require.Equal(t, []int{1, 4}, minValues.Entries())

	maxKey, maxValues, ok := m.Max()
	require.Equal(t, true, ok)
	require.Equal(t, "cherry", maxKey)
	require.Equal(t, []int{3}, maxValues.Entries())
}

func TestTreeMapEmptyMinMax(t *testing.T) {
	m := NewTreeMap[string, int](collections.NewVector[int])
	_, _, ok := m.Min()
	require.Equal(t, false, ok)
	_, _, ok = m.Max()
	require.Equal(t, false, ok)
}

func TestTreeMapWithComparator(t *testing.T) {
	descending := func(a, b string) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	}
	m := NewTreeMapWith[string, string](descending, collections.NewVector[string])
	m.Insert("apple", "aa")
	m.Insert("cherry", "cc")
	m.Insert("banana", "bb")

	require.Equal(t, []string{"cherry", "banana", "apple"}, m.Keys())

	first, _, ok := m.Min()
	require.Equal(t, true, ok)
	require.Equal(t, "cherry", first)
}

func TestTreeMapDeleteClear(t *testing.T) {
	m := NewTreeMap[string, string](collections.NewVector[string])
	m.Insert("dog", "Terry")
	m.Insert("cat", "Jonathan")
	m.Delete("dog")
	require.Equal(t, false, m.Contains("dog"))
	require.Equal(t, 1, m.Size())

	m.Clear()
	require.Equal(t, true, m.IsEmpty())

	m.Insert("dog", "Priscilla")
	require.Equal(t, []string{"dog"}, m.Keys())
}

func TestTreeMapWithSet(t *testing.T) {
	m := NewTreeMap[string, string](collections.NewSet[string])
	m.Insert("dog", "Terry")
	m.Insert("dog", "Terry")
	m.Insert("dog", "Priscilla")

	dogs, ok := m.Get("dog")
	require.Equal(t, true, ok)
	require.Equal(t, 2, dogs.Size())
	require.ElementsMatch(t, []string{"Terry", "Priscilla"}, dogs.Entries())
}

func TestTreeMapJSON(t *testing.T) {
	m := NewTreeMap[string, string](collections.NewVector[string])
	m.Insert("dog", "Terry")
	m.Insert("dog", "Zamboni")
	m.Insert("cat", "Jonathan")

	data, err := json.Marshal(m)
	require.Nil(t, err)
	require.JSONEq(t, `{"dog":["Terry","Zamboni"],"cat":["Jonathan"]}`, string(data))

	decoded := NewTreeMap[string, string](collections.NewVector[string])
	require.Nil(t, json.Unmarshal(data, decoded))
	require.Equal(t, []string{"cat", "dog"}, decoded.Keys())
	dogs, ok := decoded.Get("dog")
	require.Equal(t, true, ok)
	require.Equal(t, []string{"Terry", "Zamboni"}, dogs.Entries())
}

func TestTreeMapDecodeUnconstructed(t *testing.T) {
	var m TreeMap[string, string, *collections.Vector[string]]
	require.ErrorIs(t, m.UnmarshalJSON([]byte(`{}`)), ErrNotConstructed)
}

func TestTreeMapYAML(t *testing.T) {
	m := NewTreeMap[string, string](collections.NewVector[string])
	m.Insert("dog", "Terry")
	m.Insert("cat", "Jonathan")

	data, err := yaml.Marshal(m)
	require.Nil(t, err)

	decoded := NewTreeMap[string, string](collections.NewVector[string])
	require.Nil(t, yaml.Unmarshal(data, decoded))
	require.Equal(t, []string{"cat", "dog"}, decoded.Keys())
	cats, ok := decoded.Get("cat")
	require.Equal(t, true, ok)
	require.Equal(t, []string{"Jonathan"}, cats.Entries())
}
