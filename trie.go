package trie

import (
	"sort"

	"golang.org/x/text/cases"
)

// node is a node in a Trie holding a map of runes to child nodes. isWord
// marks that the path from the root to this node spells a stored word; word
// then holds the stored key so searches do not rebuild strings on collection.
type node struct {
	children map[rune]*node
	word     string
	isWord   bool
	meta     interface{}
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Trie is a prefix-indexed container for strings. Every operation runs in
// time proportional to the length of its input, independent of how many
// words are stored.
type Trie struct {
	root        *node
	size        int
	fuzzy       bool
	caseFolding bool

	levenshteinScheme    map[uint8]uint8
	levenshteinIntervals []uint8

	folder cases.Caser
	// originals maps a folded key to the spellings that were inserted for it.
	// Only populated when case folding is on.
	originals map[string][]string
}

// New creates a new empty trie. Matching is exact and case sensitive by
// default; use the With/CaseInsensitive option methods before inserting to
// change that.
func New() *Trie {
	t := new(Trie)
	t.root = newNode()
	t.folder = cases.Fold()
	t.originals = make(map[string][]string)
	t.WithoutLevenshtein()
	return t
}

// CaseSensitive sets the Trie to store and match words exactly as given.
func (t *Trie) CaseSensitive() *Trie {
	t.caseFolding = false
	return t
}

// CaseInsensitive sets the Trie to case-fold words on insert and on every
// lookup. Searches report the originally inserted spellings. Configure this
// before inserting; keys stored earlier are not refolded.
func (t *Trie) CaseInsensitive() *Trie {
	t.caseFolding = true
	return t
}

// Len reports the number of distinct stored keys. Spellings that fold to the
// same key count once.
func (t *Trie) Len() int {
	return t.size
}

// Insert adds words to the Trie. Inserting a word that is already present
// changes nothing.
func (t *Trie) Insert(words ...string) {
	for _, word := range words {
		t.insert(word, nil)
	}
}

func (t *Trie) insert(word string, meta interface{}) {
	key := t.fold(word)
	if t.caseFolding && !t.hasSpelling(key, word) {
		t.originals[key] = append(t.originals[key], word)
	}
	curr := t.root
	for _, r := range key {
		child, ok := curr.children[r]
		if !ok {
			child = newNode()
			curr.children[r] = child
		}
		curr = child
	}
	if !curr.isWord {
		t.size++
	}
	curr.isWord = true
	curr.word = key
	curr.meta = meta
}

// Exists reports whether word itself was stored. A string that is only a
// prefix of stored words is not reported. Exists never mutates the Trie.
func (t *Trie) Exists(word string) bool {
	n := t.find(t.fold(word))
	return n != nil && n.isWord
}

// Delete removes a word from the Trie and prunes any nodes left spelling
// neither a word nor a prefix of one. Deleting an absent word is a no-op.
func (t *Trie) Delete(word string) {
	key := t.fold(word)
	runes := []rune(key)
	path := make([]*node, 0, len(runes)+1)
	path = append(path, t.root)
	curr := t.root
	for _, r := range runes {
		next, ok := curr.children[r]
		if !ok {
			return
		}
		curr = next
		path = append(path, curr)
	}
	if !curr.isWord {
		return
	}
	curr.isWord = false
	curr.word = ""
	curr.meta = nil
	t.size--
	if t.caseFolding {
		delete(t.originals, key)
	}
	// walk back up, discarding nodes that no longer lead anywhere. The root
	// always stays.
	for i := len(runes); i > 0; i-- {
		child := path[i]
		if child.isWord || len(child.children) > 0 {
			break
		}
		delete(path[i-1].children, runes[i-1])
	}
}

// SearchAll is just like Search, but without a limit.
func (t *Trie) SearchAll(prefix string) []string {
	return t.Search(prefix, 0)
}

// Search returns all stored words equal to or extending prefix, up to limit
// (0 means no limit). With the default configuration results are in
// lexicographic order; with fuzzy matching or a levenshtein scheme enabled
// they are ordered by distance, then exact hits before fuzzy ones, then
// lexicographically. Searching the empty prefix enumerates every stored word.
func (t *Trie) Search(prefix string, limit int) []string {
	hits := t.matches(prefix)
	if limit != 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	words := make([]string, 0, len(hits))
	for _, hit := range hits {
		words = append(words, t.spellings(hit.Word)...)
	}
	return words
}

// matches resolves a search against the configured matching mode.
func (t *Trie) matches(prefix string) []Match {
	key := t.fold(prefix)
	if maxDistance := t.maxDistance(key); t.fuzzy || maxDistance > 0 {
		return t.approxMatches(key, maxDistance)
	}
	return t.exactMatches(key)
}

// exactMatches collects the subtree below the prefix node in lexicographic
// order of the stored keys.
func (t *Trie) exactMatches(key string) []Match {
	n := t.find(key)
	if n == nil {
		return []Match{}
	}
	hits := make([]Match, 0)
	n.appendMatches(&hits)
	sort.Slice(hits, func(i, j int) bool { return hits[i].Word < hits[j].Word })
	return hits
}

func (n *node) appendMatches(out *[]Match) {
	if n.isWord {
		*out = append(*out, Match{Word: n.word, Meta: n.meta})
	}
	for _, child := range n.children {
		child.appendMatches(out)
	}
}

// find walks the key's path without creating nodes, returning nil when the
// path does not exist.
func (t *Trie) find(key string) *node {
	curr := t.root
	for _, r := range key {
		next, ok := curr.children[r]
		if !ok {
			return nil
		}
		curr = next
	}
	return curr
}

func (t *Trie) fold(s string) string {
	if !t.caseFolding {
		return s
	}
	return t.folder.String(s)
}

// spellings maps a stored key back to the inserted originals.
func (t *Trie) spellings(key string) []string {
	if !t.caseFolding {
		return []string{key}
	}
	if originals := t.originals[key]; len(originals) > 0 {
		return originals
	}
	return []string{key}
}

func (t *Trie) hasSpelling(key, word string) bool {
	for _, o := range t.originals[key] {
		if o == word {
			return true
		}
	}
	return false
}

func sortedKeys(children map[rune]*node) []rune {
	keys := make([]rune, 0, len(children))
	for r := range children {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
