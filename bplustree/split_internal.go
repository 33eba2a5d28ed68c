package bplus

// splitInternal splits a full internal node and returns the promoted
// key together with the new right sibling's handle. Unlike a leaf
// split, the middle key moves up: it ends in neither half.
func (t *BPlusTree) splitInternal(node *Node) (int, int64) {
	// mid is the index of the key to promote
	mid := len(node.keys) / 2
	promote := node.keys[mid]

	// keys: left keeps [0:mid), promote keys[mid], right gets (mid, end]
	// children: left keeps [0:mid], right gets [mid+1:]
	right := t.arena.allocate(NodeInternal)
	right.keys = append(right.keys, node.keys[mid+1:]...)
	right.children = append(right.children, node.children[mid+1:]...)

	// shrink left node
	node.keys = node.keys[:mid]
	node.children = node.children[:mid+1]

	return promote, right.id
}
