package bplus

// newRoot creates a new internal root with leftId and rightId as its
// two children, separated by promoteKey. The old root becomes a plain
// child; this is the only way the tree grows in height.
func (t *BPlusTree) newRoot(leftId int64, promoteKey int, rightId int64) {
	root := t.arena.allocate(NodeInternal)
	root.keys = append(root.keys, promoteKey)
	root.children = append(root.children, leftId, rightId)
	t.root = root.id
}
