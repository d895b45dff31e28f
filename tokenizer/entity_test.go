package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func lookup(name string) *entityNode {
	n := namedEntityTrie
	for i := 0; i < len(name); i++ {
		child, ok := n.child(name[i])
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

type entityTrieCase struct {
	name  string
	check func(t *testing.T)
}

var entityTrieCases = []entityTrieCase{
	{"known terminated entity", func(t *testing.T) {
		n := lookup("&amp;")
		require.NotNil(t, n)
		require.NotNil(t, n.value)
		require.Equal(t, []rune{'&'}, n.value)
		require.True(t, n.endsInSemicolon())
	}},
	{"legacy unterminated alias", func(t *testing.T) {
		n := lookup("&amp")
		require.NotNil(t, n)
		require.NotNil(t, n.value)
		require.False(t, n.endsInSemicolon())
	}},
	{"unknown name has no value", func(t *testing.T) {
		n := lookup("&notarealentityname")
		if n != nil {
			require.Nil(t, n.value)
		}
	}},
	{"longest prefix is distinct from a shorter match", func(t *testing.T) {
		notNode := lookup("&not;")
		notinNode := lookup("&notin;")
		require.NotNil(t, notNode)
		require.NotNil(t, notinNode)
		require.NotEqual(t, notNode.value, notinNode.value)
	}},
}

func TestEntityTrie(t *testing.T) {
	for _, tc := range entityTrieCases {
		runEntityTrieCase(tc, t)
	}
}

func runEntityTrieCase(tc entityTrieCase, t *testing.T) {
	t.Run(tc.name, func(t *testing.T) {
		t.Parallel()
		tc.check(t)
	})
}

func TestEntityTrieTwoCodePointExpansion(t *testing.T) {
	n := lookup("&NotEqualTilde;")
	if n == nil {
		t.Skip("NotEqualTilde not present in the curated entity table")
	}
	require.Len(t, n.value, 2)
}
