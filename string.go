package trie

import "strings"

// String renders the stored keys level by level, one row per depth. Each
// entry shows a key rune followed by (*) when a word ends at that node,
// () otherwise. Rows list children in ascending rune order.
func (t *Trie) String() string {
	var b strings.Builder
	queue := []*node{t.root}
	for len(queue) > 0 {
		next := make([]*node, 0, len(queue))
		for _, n := range queue {
			for _, r := range sortedKeys(n.children) {
				child := n.children[r]
				b.WriteRune(r)
				if child.isWord {
					b.WriteString("(*) ")
				} else {
					b.WriteString("() ")
				}
				if len(child.children) > 0 {
					next = append(next, child)
				}
			}
		}
		queue = next
		if len(queue) > 0 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
