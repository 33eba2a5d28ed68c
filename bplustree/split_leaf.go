package bplus

// splitLeaf divides an overflowing leaf, splices the right sibling into
// the leaf chain and promotes the sibling's first key into the parent.
// path holds the handles of the leaf's ancestors, root first.
func (t *BPlusTree) splitLeaf(leaf *Node, path []int64) {
	mid := len(leaf.keys) / 2

	right := t.arena.allocate(NodeLeaf)
	right.keys = append(right.keys, leaf.keys[mid:]...)
	right.values = append(right.values, leaf.values[mid:]...)
	right.next = leaf.next // right inherits leaf's old next handle

	leaf.keys = leaf.keys[:mid]
	leaf.values = leaf.values[:mid]
	leaf.next = right.id

	// Leaf splits copy the separator up: right's first key stays in the
	// leaf and is repeated in the parent.
	sepKey := right.keys[0]

	t.insertIntoParent(path, leaf.id, sepKey, right.id)
}
