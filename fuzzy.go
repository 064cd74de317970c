package trie

import (
	"sort"
	"unicode/utf8"
)

const (
	shortStringLevenshteinLimit  uint8 = 0
	mediumStringLevenshteinLimit uint8 = 1
	longStringLevenshteinLimit   uint8 = 2

	shortStringThreshold  uint8 = 0
	mediumStringThreshold uint8 = 3
	longStringThreshold   uint8 = 5
)

type score struct {
	levenshtein uint8
	fuzzy       bool
}

type matchScore struct {
	score
	meta interface{}
}

// WithFuzzy sets the Trie to use fuzzy matching on search: a search string
// may skip over stored characters, so "tsd" can find "tuesday".
func (t *Trie) WithFuzzy() *Trie {
	t.fuzzy = true
	return t
}

// WithoutFuzzy sets the Trie not to use fuzzy matching on search.
func (t *Trie) WithoutFuzzy() *Trie {
	t.fuzzy = false
	return t
}

// WithoutLevenshtein sets the Trie not to allow any levenshtein distance
// between the search string and a match.
func (t *Trie) WithoutLevenshtein() *Trie {
	return t.CustomLevenshtein(map[uint8]uint8{0: 0})
}

// DefaultLevenshtein sets the Trie to use the default levenshtein scheme:
// search strings of 1-2 runes allow no distance, 3-4 runes allow a distance
// of 1, and 5 or more runes allow a distance of 2.
func (t *Trie) DefaultLevenshtein() *Trie {
	return t.CustomLevenshtein(map[uint8]uint8{
		shortStringThreshold:  shortStringLevenshteinLimit,
		mediumStringThreshold: mediumStringLevenshteinLimit,
		longStringThreshold:   longStringLevenshteinLimit,
	})
}

// CustomLevenshtein sets up a custom levenshtein scheme: pairs of search
// string length to the distance allowed from that length upward. A valid
// scheme must contain an entry for length zero; an invalid scheme panics.
func (t *Trie) CustomLevenshtein(scheme map[uint8]uint8) *Trie {
	if _, ok := scheme[0]; !ok {
		panic("trie: levenshtein scheme must contain a zero-length entry")
	}
	t.levenshteinIntervals = make([]uint8, 0, len(scheme))
	for key := range scheme {
		t.levenshteinIntervals = append(t.levenshteinIntervals, key)
	}
	sort.Slice(t.levenshteinIntervals, func(i, j int) bool {
		return t.levenshteinIntervals[i] > t.levenshteinIntervals[j]
	})
	t.levenshteinScheme = scheme
	return t
}

// maxDistance determines the allowed levenshtein distance for a search
// string from the configured scheme.
func (t *Trie) maxDistance(search string) (maxDistance uint8) {
	length := utf8.RuneCountInString(search)
	for _, interval := range t.levenshteinIntervals {
		if length >= int(interval) {
			return t.levenshteinScheme[interval]
		}
	}
	return
}

// approxMatches runs the recursive collector and orders hits by levenshtein
// distance, then exact hits before fuzzy ones, then lexicographically.
func (t *Trie) approxMatches(key string, maxDistance uint8) []Match {
	collection := make(map[string]matchScore)
	t.collect(collection, key, t.root, 0, maxDistance, t.fuzzy, false)
	hits := make([]Match, 0, len(collection))
	for word, sc := range collection {
		hits = append(hits, Match{Word: word, Meta: sc.meta})
	}
	sort.Slice(hits, func(i, j int) bool {
		a, b := collection[hits[i].Word], collection[hits[j].Word]
		switch {
		case a.levenshtein != b.levenshtein:
			return a.levenshtein < b.levenshtein
		case a.fuzzy != b.fuzzy:
			return !a.fuzzy
		default:
			return hits[i].Word < hits[j].Word
		}
	})
	return hits
}

// collect traverses the Trie recording words that match the remaining search
// string in collection, the best score per word winning. Substitution,
// insertion and deletion each cost one distance; fuzzy descent skips a stored
// character for free but marks the hit as fuzzy.
func (t *Trie) collect(collection map[string]matchScore, word string, n *node, distance, maxDistance uint8, fuzzyAllowed, fuzzyUsed bool) {
	if len(word) == 0 {
		// the search string is consumed: this node and everything below it
		// extends the (corrected) prefix
		if n.isWord {
			record(collection, n.word, n.meta, distance, fuzzyUsed)
		}
		n.recordDescendants(collection, distance, fuzzyUsed)
		return
	}
	character, size := utf8.DecodeRuneInString(word)
	subword := word[size:]

	if next := n.children[character]; next != nil {
		t.collect(collection, subword, next, distance, maxDistance, false, fuzzyUsed)
	}

	if distance < maxDistance {
		distance++
		for r, next := range n.children {
			// substitution
			t.collect(collection, string(r)+subword, n, distance, maxDistance, false, fuzzyUsed)
			// insertion
			t.collect(collection, string(r)+word, n, distance, maxDistance, false, fuzzyUsed)
			if fuzzyAllowed {
				t.collect(collection, word, next, distance-1, maxDistance, true, true)
			}
		}
		// deletion
		t.collect(collection, subword, n, distance, maxDistance, false, false)
	} else if distance == 0 && fuzzyAllowed {
		for _, next := range n.children {
			t.collect(collection, word, next, distance, maxDistance, true, true)
		}
	}
}

func (n *node) recordDescendants(collection map[string]matchScore, distance uint8, fuzzyUsed bool) {
	for _, child := range n.children {
		if child.isWord {
			record(collection, child.word, child.meta, distance, fuzzyUsed)
		}
		child.recordDescendants(collection, distance, fuzzyUsed)
	}
}

func record(collection map[string]matchScore, word string, meta interface{}, distance uint8, fuzzyUsed bool) {
	prev, ok := collection[word]
	if !ok || distance < prev.levenshtein ||
		(distance == prev.levenshtein && prev.fuzzy && !fuzzyUsed) {
		collection[word] = matchScore{score{levenshtein: distance, fuzzy: fuzzyUsed}, meta}
	}
}
