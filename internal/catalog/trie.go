package catalog

import "strings"

// trieNode is one character position shared by every indexed suffix passing
// through it. Terminal nodes carry the canonical names of the entities whose
// keys end (or whose suffixes end) here.
type trieNode struct {
	children map[rune]*trieNode
	terminal []string
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// Trie indexes every searchable key of every entity for substring queries.
//
// Substring search over a plain prefix trie would require probing every
// suffix of every stored key at query time, so the trie is built as a suffix
// trie instead: every suffix of every lower-cased key is inserted up front.
// Build cost is quadratic in key length, which is acceptable for short
// substance names; queries are then a single descent plus a subtree walk.
// The trie is built once during engine construction and never mutated.
type Trie struct {
	root *trieNode
}

// NewTrie returns an empty trie.
func NewTrie() *Trie {
	return &Trie{root: newTrieNode()}
}

// Insert indexes key so that any substring of it resolves to canonicalName.
func (t *Trie) Insert(key, canonicalName string) {
	runes := []rune(strings.ToLower(key))
	for start := 0; start < len(runes); start++ {
		node := t.root
		for _, r := range runes[start:] {
			child, ok := node.children[r]
			if !ok {
				child = newTrieNode()
				node.children[r] = child
			}
			node = child
		}
		node.terminal = append(node.terminal, canonicalName)
	}
}

// SearchSubstring returns the canonical names of every entity one of whose
// indexed keys contains query, case-insensitive. The empty query matches
// nothing. Result order carries no meaning; ranking happens downstream.
func (t *Trie) SearchSubstring(query string) []string {
	if query == "" {
		return nil
	}

	node := t.root
	for _, r := range strings.ToLower(query) {
		child, ok := node.children[r]
		if !ok {
			return nil
		}
		node = child
	}

	seen := make(map[string]struct{})
	var results []string
	collect(node, seen, &results)
	return results
}

func collect(node *trieNode, seen map[string]struct{}, results *[]string) {
	for _, name := range node.terminal {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		*results = append(*results, name)
	}
	for _, child := range node.children {
		collect(child, seen, results)
	}
}
