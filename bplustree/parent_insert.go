package bplus

import "fmt"

// insertIntoParent inserts sepKey and rightId into the parent of leftId.
// If the parent overflows, it splits and propagates upward.
//
// path is the descent path captured by findLeaf (root first); the loop
// consumes it from the end, so the cascade is bounded by tree height and
// never re-walks the tree to discover a parent. An exhausted path means
// the last split node was the root, which grows the tree by one level.
func (t *BPlusTree) insertIntoParent(path []int64, leftId int64, sepKey int, rightId int64) {
	for {
		if len(path) == 0 {
			t.newRoot(leftId, sepKey, rightId)
			return
		}

		parentId := path[len(path)-1]
		path = path[:len(path)-1]
		parent := t.arena.node(parentId)

		// find index of leftId in parent's children
		idx := childIndex(parent, leftId)

		// insert sepKey at idx, and rightId after idx
		parent.keys = insert(parent.keys, idx, sepKey)
		parent.children = insert(parent.children, idx+1, rightId)

		if len(parent.keys) < Order {
			return
		}

		// Parent overflowed: split it and carry the promoted key one
		// level further up.
		sepKey, rightId = t.splitInternal(parent)
		leftId = parentId
	}
}

// childIndex locates childId among parent's children. The path handed
// to insertIntoParent is the path the insert just descended, so a miss
// here means the tree structure is corrupt; silently skipping the
// promotion would leave a split child with no separator above it.
func childIndex(parent *Node, childId int64) int {
	for i, id := range parent.children {
		if id == childId {
			return i
		}
	}
	panic(fmt.Sprintf("bplus: node %d is not a child of node %d", childId, parent.id))
}
