package trie

// Match represents a search hit with its stored metadata.
type Match struct {
	Word string
	Meta interface{}
}

// InsertWithMeta inserts a single word with associated metadata. Re-inserting
// a word replaces its metadata.
func (t *Trie) InsertWithMeta(word string, meta interface{}) {
	t.insert(word, meta)
}

// BulkInsertWithMeta inserts multiple words each with their own metadata.
func (t *Trie) BulkInsertWithMeta(entries map[string]interface{}) {
	for word, meta := range entries {
		t.insert(word, meta)
	}
}

// FindMeta returns the metadata stored for the exact word, if present.
func (t *Trie) FindMeta(word string) (interface{}, bool) {
	n := t.find(t.fold(word))
	if n == nil || !n.isWord {
		return nil, false
	}
	return n.meta, true
}

// SearchAllMeta is Search without a limit, returning words together with
// their metadata.
func (t *Trie) SearchAllMeta(prefix string) []Match {
	hits := t.matches(prefix)
	if !t.caseFolding {
		return hits
	}
	expanded := make([]Match, 0, len(hits))
	for _, hit := range hits {
		for _, spelling := range t.spellings(hit.Word) {
			expanded = append(expanded, Match{Word: spelling, Meta: hit.Meta})
		}
	}
	return expanded
}

// GTrie is a generic wrapper around Trie storing typed metadata.
type GTrie[T any] struct{ *Trie }

// GMatch is a search hit with typed metadata.
type GMatch[T any] struct {
	Word string
	Meta T
}

// NewG creates a new generic trie.
func NewG[T any]() *GTrie[T] { return &GTrie[T]{New()} }

// Insert adds a word with typed metadata.
func (g *GTrie[T]) Insert(word string, meta T) { g.InsertWithMeta(word, meta) }

// Find retrieves the metadata for the given word.
func (g *GTrie[T]) Find(word string) (T, bool) {
	var zero T
	v, ok := g.FindMeta(word)
	if !ok {
		return zero, false
	}
	meta, ok := v.(T)
	if !ok {
		return zero, false
	}
	return meta, true
}

// SearchAll returns every match for prefix with typed metadata.
func (g *GTrie[T]) SearchAll(prefix string) []GMatch[T] {
	raw := g.SearchAllMeta(prefix)
	res := make([]GMatch[T], len(raw))
	for i, m := range raw {
		res[i].Word = m.Word
		if v, ok := m.Meta.(T); ok {
			res[i].Meta = v
		}
	}
	return res
}
