package bplus

// findLeaf walks from the root to the leaf owning key, appending the
// handle of every internal node it passes through to path (root first).
// Splits use that path to patch ancestors bottom-up instead of
// re-walking the tree per split.
//
// Caller must not call this on an empty tree.
func (t *BPlusTree) findLeaf(key int, path []int64) (*Node, []int64) {
	nodeId := t.root
	for {
		n := t.arena.node(nodeId)
		if n.nodeType == NodeLeaf {
			return n, path
		}
		i := upperBound(n.keys, key)
		if i >= len(n.children) {
			i = len(n.children) - 1
		}
		path = append(path, nodeId)
		nodeId = n.children[i]
	}
}
