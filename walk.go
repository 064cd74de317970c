package trie

// WalkFunc is the type of the function Walk calls for each stored word. If
// it returns false, the traversal stops.
type WalkFunc func(word string, meta interface{}) bool

// Walk visits every stored word equal to or extending prefix in lexicographic
// order of the stored keys. The empty prefix walks the whole Trie. Walk never
// mutates the structure; fn must not either.
func (t *Trie) Walk(prefix string, fn WalkFunc) {
	n := t.find(t.fold(prefix))
	if n == nil {
		return
	}
	t.walkNode(n, fn)
}

func (t *Trie) walkNode(n *node, fn WalkFunc) bool {
	if n.isWord {
		for _, spelling := range t.spellings(n.word) {
			if !fn(spelling, n.meta) {
				return false
			}
		}
	}
	for _, r := range sortedKeys(n.children) {
		if !t.walkNode(n.children[r], fn) {
			return false
		}
	}
	return true
}
