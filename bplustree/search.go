package bplus

// Search looks for a key in the B+ tree and returns its value if found.
// A miss is a normal outcome, reported through ok, never an error.
func (t *BPlusTree) Search(key int) (int, bool) {
	if t.root == invalidID {
		return 0, false
	}

	leaf, _ := t.findLeaf(key, nil)

	idx := binarySearch(leaf.keys, key)
	if idx != -1 {
		return leaf.values[idx], true
	}
	return 0, false
}
