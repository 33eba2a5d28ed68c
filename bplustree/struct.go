// Structure of B+ Tree
/*
Tree
 ├── Internal Node (separator keys + child handles)
 │      └── Child Internal Nodes ...
 │             └── Leaf Nodes (keys + values + next handle)


- keys: sorted ascending order, no duplicates
- internal nodes: children length == len(keys)+1
- leaf nodes: values length == len(keys)
- leaf nodes linked with `next` for ascending-order traversal
- all leaf nodes at same depth
- nodes live in an arena owned by the tree; children and next are
  arena handles, not pointers

*/
package bplus

type NodeType int

const (
	NodeInternal NodeType = iota
	NodeLeaf
)

const (
	// Order is the fanout bound: an internal node holds at most Order
	// children. Any node reaching Order keys is split.
	Order   = 4
	MaxKeys = Order - 1
)

// invalidID marks "no node": an empty tree's root, or the end of the
// leaf chain.
const invalidID int64 = -1

type Node struct {
	id       int64
	nodeType NodeType
	keys     []int
	children []int64 // only for internal node
	values   []int   // only for leaf node
	next     int64   // only for leaf node
}

type BPlusTree struct {
	root  int64 // arena handle of the root node
	arena *arena
}
