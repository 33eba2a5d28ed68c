package bplus

// Insert adds a key/value pair to the tree. Inserting a key that is
// already present overwrites its value in place (upsert).
func (t *BPlusTree) Insert(key int, value int) {
	// If tree is empty
	if t.root == invalidID {
		t.root = t.newLeaf(key, value).id
		return
	}

	// find leaf, recording the descent path for split promotion
	leaf, path := t.findLeaf(key, make([]int64, 0, 8))

	idx := binarySearch(leaf.keys, key)
	if idx != -1 {
		// Key exists — update value in place.
		leaf.values[idx] = value
		return
	}

	// Insert key/value in sorted position.
	insertPos := lowerBound(leaf.keys, key)
	leaf.keys = insert(leaf.keys, insertPos, key)
	leaf.values = insert(leaf.values, insertPos, value)

	// Split if the leaf reached the fanout bound.
	if len(leaf.keys) >= Order {
		t.splitLeaf(leaf, path)
	}
}
