/*
Package trie provides a prefix-indexed container for strings supporting
insertion, exact-membership lookup, prefix enumeration and deletion, each in
time proportional to the length of the input string. Optional case folding,
fuzzy matching with a configurable levenshtein scheme, and arbitrary per-word
metadata are available through builder-style options.

A freshly constructed Trie matches exactly and is case sensitive. Exact prefix
searches return words in lexicographic order. A Trie is not safe for
concurrent use; callers needing that must serialize access externally.
*/
package trie
