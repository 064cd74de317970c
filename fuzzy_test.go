package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func weekdays() []string {
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
}

func TestFuzzySearch(t *testing.T) {
	tr := New().WithFuzzy().DefaultLevenshtein().CaseInsensitive()
	tr.Insert(weekdays()...)

	t.Run("characters may be skipped", func(t *testing.T) {
		assert.Equal(t, []string{"Wednesday"}, tr.SearchAll("wdn"))
	})

	t.Run("skips combine with levenshtein corrections", func(t *testing.T) {
		assert.Equal(t, []string{"Thursday", "Tuesday", "Wednesday"}, tr.SearchAll("tsd"))
	})

	t.Run("exact prefix hits rank first", func(t *testing.T) {
		hits := tr.SearchAll("mon")
		assert.NotEmpty(t, hits)
		assert.Equal(t, "Monday", hits[0])
	})

	t.Run("empty search enumerates every word", func(t *testing.T) {
		assert.Equal(t,
			[]string{"Friday", "Monday", "Saturday", "Sunday", "Thursday", "Tuesday", "Wednesday"},
			tr.SearchAll(""))
	})
}

func TestFuzzyWithoutLevenshtein(t *testing.T) {
	tr := New().WithFuzzy()
	tr.Insert("monday", "sunday")

	t.Run("matches a subsequence of stored characters", func(t *testing.T) {
		assert.Equal(t, []string{"monday", "sunday"}, tr.SearchAll("day"))
	})

	t.Run("no corrections allowed", func(t *testing.T) {
		assert.Empty(t, tr.SearchAll("mxnday"))
	})
}

func TestLevenshteinScheme(t *testing.T) {
	t.Run("corrections within the allowed distance match", func(t *testing.T) {
		tr := New().CustomLevenshtein(map[uint8]uint8{0: 0, 1: 1})
		tr.Insert("cat")
		assert.Equal(t, []string{"cat"}, tr.SearchAll("bat"))
	})

	t.Run("no corrections by default", func(t *testing.T) {
		tr := New()
		tr.Insert("cat")
		assert.Empty(t, tr.SearchAll("bat"))
	})

	t.Run("scheme without a zero entry panics", func(t *testing.T) {
		assert.Panics(t, func() {
			New().CustomLevenshtein(map[uint8]uint8{3: 1})
		})
	})

	t.Run("default scheme scales with search length", func(t *testing.T) {
		tr := New().DefaultLevenshtein()
		assert.Equal(t, uint8(0), tr.maxDistance("ab"))
		assert.Equal(t, uint8(1), tr.maxDistance("abc"))
		assert.Equal(t, uint8(1), tr.maxDistance("abcd"))
		assert.Equal(t, uint8(2), tr.maxDistance("abcde"))
		assert.Equal(t, uint8(2), tr.maxDistance("abcdefgh"))
	})
}

func TestDefaultsMatchExactly(t *testing.T) {
	tr := New()
	tr.Insert(weekdays()...)

	t.Run("prefix match is case sensitive", func(t *testing.T) {
		assert.Equal(t, []string{"Thursday", "Tuesday"}, tr.SearchAll("T"))
		assert.Empty(t, tr.SearchAll("t"))
	})

	t.Run("no fuzzy matching", func(t *testing.T) {
		assert.Empty(t, tr.SearchAll("wdn"))
	})
}
