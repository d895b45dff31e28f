package tokenizer

import "github.com/sirupsen/logrus"

// EntityRow is one row of the static named-entity table: a name —
// including the leading '&', and, for the modern entries, a trailing
// ';' — mapped to the one or two code points it expands to.
type EntityRow struct {
	Name       string
	CodePoints []rune
}

// entityNode is one node of the 256-way-conceptual trie. A literal
// 256-entry children array per node would waste memory for a table
// this sparse; children is a byte-keyed map instead, which preserves
// the same "longest terminal so far" descent semantics at a fraction
// of the footprint.
type entityNode struct {
	children map[byte]*entityNode
	value    []rune // non-nil iff this node terminates a named entity
	name     string // full matched name, incl. leading '&'; only set when value != nil
}

func (n *entityNode) child(b byte) (*entityNode, bool) {
	c, ok := n.children[b]
	return c, ok
}

// endsInSemicolon reports whether the entity name terminating at this
// node ends with ';'. Only meaningful when n.value != nil.
func (n *entityNode) endsInSemicolon() bool {
	return len(n.name) > 0 && n.name[len(n.name)-1] == ';'
}

func buildEntityTrie(rows []EntityRow) *entityNode {
	root := &entityNode{children: make(map[byte]*entityNode)}
	for _, row := range rows {
		n := root
		for i := 0; i < len(row.Name); i++ {
			b := row.Name[i]
			child, ok := n.children[b]
			if !ok {
				child = &entityNode{children: make(map[byte]*entityNode)}
				n.children[b] = child
			}
			n = child
		}
		n.value = row.CodePoints
		n.name = row.Name
	}
	logrus.WithField("entities", len(rows)).Debug("html tokenizer: named-entity trie built")
	return root
}

// namedEntityTrie is the shared, read-only trie built from
// namedEntityTable (entity_table.go). It is never mutated after
// buildEntityTrie returns, so every Tokenizer can point at the same
// root.
var namedEntityTrie = buildEntityTrie(namedEntityTable)
