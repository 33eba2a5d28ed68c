package bplus

import "fmt"

// arena is the allocation backing for a single tree. Every node is
// addressed by a stable int64 handle (its slice index), so parent→child
// edges and the leaf chain stay valid no matter how the slices grow.
// Nodes are never deallocated: there is no delete operation, so a node
// created by a split stays in the tree for its whole lifetime.
type arena struct {
	nodes []*Node
}

func newArena() *arena {
	return &arena{nodes: make([]*Node, 0, 16)}
}

// allocate creates a node of the given type and hands ownership of the
// new handle to the caller.
func (a *arena) allocate(nodeType NodeType) *Node {
	n := &Node{
		id:       int64(len(a.nodes)),
		nodeType: nodeType,
		keys:     make([]int, 0, Order),
		next:     invalidID,
	}
	if nodeType == NodeInternal {
		n.children = make([]int64, 0, Order+1)
	} else {
		n.values = make([]int, 0, Order)
	}
	a.nodes = append(a.nodes, n)
	return n
}

// node resolves a handle. Handles are produced only by allocate and the
// arena never shrinks, so an out-of-range handle means the tree
// structure is corrupt.
func (a *arena) node(id int64) *Node {
	if id < 0 || id >= int64(len(a.nodes)) {
		panic(fmt.Sprintf("bplus: invalid node handle %d (arena size %d)", id, len(a.nodes)))
	}
	return a.nodes[id]
}

func (a *arena) size() int {
	return len(a.nodes)
}
