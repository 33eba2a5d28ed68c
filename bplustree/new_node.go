package bplus

// newLeaf allocates a leaf holding a single pair. Used for the very
// first insert; every other node is created by a split.
func (t *BPlusTree) newLeaf(key int, value int) *Node {
	leaf := t.arena.allocate(NodeLeaf)
	leaf.keys = append(leaf.keys, key)
	leaf.values = append(leaf.values, value)
	return leaf
}
