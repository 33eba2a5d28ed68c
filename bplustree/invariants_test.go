package bplus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants verifies the structural invariants of a tree between
// operations: node capacity, internal arity, strictly ascending keys,
// equal leaf depth, and a leaf chain that enumerates every leaf left to
// right.
func checkInvariants(t *testing.T, tree *BPlusTree) {
	t.Helper()

	if tree.root == invalidID {
		require.Equal(t, 0, tree.KeyCount())
		return
	}

	var leaves []int64
	leafDepth := -1

	var walk func(id int64, depth int)
	walk = func(id int64, depth int) {
		n := tree.arena.node(id)
		require.LessOrEqual(t, len(n.keys), MaxKeys, "node %d over capacity", n.id)
		for i := 1; i < len(n.keys); i++ {
			require.Less(t, n.keys[i-1], n.keys[i], "node %d keys not strictly ascending", n.id)
		}

		if n.nodeType == NodeLeaf {
			require.Len(t, n.values, len(n.keys), "leaf %d keys/values misaligned", n.id)
			if leafDepth == -1 {
				leafDepth = depth
			} else {
				require.Equal(t, leafDepth, depth, "leaf %d at wrong depth", n.id)
			}
			leaves = append(leaves, id)
			return
		}

		require.Len(t, n.children, len(n.keys)+1, "internal %d arity broken", n.id)
		for _, child := range n.children {
			walk(child, depth+1)
		}
	}
	walk(tree.root, 0)

	// Following the next chain from the leftmost leaf must visit exactly
	// the leaves of the tree, in tree order.
	var chain []int64
	for id := tree.leftmostLeaf(); id != invalidID; id = tree.arena.node(id).next {
		chain = append(chain, id)
	}
	require.Equal(t, leaves, chain, "leaf chain does not match tree order")

	keys := collectLeafKeys(tree)
	for i := 1; i < len(keys); i++ {
		require.Less(t, keys[i-1], keys[i], "leaf chain keys not strictly ascending")
	}
}

// collectLeafKeys walks the leaf chain and returns every stored key in
// chain order.
func collectLeafKeys(tree *BPlusTree) []int {
	var keys []int
	for id := tree.leftmostLeaf(); id != invalidID; {
		leaf := tree.arena.node(id)
		keys = append(keys, leaf.keys...)
		id = leaf.next
	}
	return keys
}
