package bplus

// NewBPlusTree creates an empty tree. The tree exclusively owns its
// node arena; the root handle stays invalid until the first insert.
func NewBPlusTree() *BPlusTree {
	return &BPlusTree{
		root:  invalidID,
		arena: newArena(),
	}
}
