// Package bplus: tree inspection for debugging.
// Use Dump() to print a human-readable dump of the tree to stdout.

package bplus

import (
	"fmt"
	"io"
	"os"
)

// Dump prints the tree structure to stdout.
func (t *BPlusTree) Dump() {
	t.DumpTo(os.Stdout)
}

// DumpTo writes a human-readable dump of the tree to w:
// one block per level, each node's keys and (for leaves) key → value.
func (t *BPlusTree) DumpTo(w io.Writer) {
	p := func(format string, args ...interface{}) { fmt.Fprintf(w, format, args...) }
	pln := func(s string) { fmt.Fprintln(w, s) }

	p("B+ tree: order=%d nodes=%d height=%d\n", Order, t.NodeCount(), t.Height())
	if t.root == invalidID {
		pln("  (empty tree)")
		return
	}

	pln("  Nodes (BFS):")
	pln("  ---")

	queue := []int64{t.root}
	level := 0

	for len(queue) > 0 {
		size := len(queue)
		p("  Level %d:\n", level)
		for i := 0; i < size; i++ {
			node := t.arena.node(queue[i])

			if node.nodeType == NodeInternal {
				p("    [node %d] INTERNAL keys=%v children=%v\n",
					node.id, node.keys, node.children)
				queue = append(queue, node.children...)
			} else {
				p("    [node %d] LEAF next=%d\n", node.id, node.next)
				for j, key := range node.keys {
					p("      %d -> %d\n", key, node.values[j])
				}
			}
		}
		pln("  ---")
		queue = queue[size:]
		level++
	}
}

// Height returns the number of levels in the tree; an empty tree has
// height 0 and a lone root leaf has height 1.
func (t *BPlusTree) Height() int {
	if t.root == invalidID {
		return 0
	}
	height := 1
	n := t.arena.node(t.root)
	for n.nodeType == NodeInternal {
		n = t.arena.node(n.children[0])
		height++
	}
	return height
}

// NodeCount returns the total number of nodes ever created. Nodes are
// never destroyed, so this only grows.
func (t *BPlusTree) NodeCount() int {
	return t.arena.size()
}

// KeyCount walks the leaf chain and returns the number of distinct keys
// currently stored.
func (t *BPlusTree) KeyCount() int {
	count := 0
	for id := t.leftmostLeaf(); id != invalidID; {
		leaf := t.arena.node(id)
		count += len(leaf.keys)
		id = leaf.next
	}
	return count
}

// leftmostLeaf returns the handle of the first leaf in key order, or
// invalidID for an empty tree.
func (t *BPlusTree) leftmostLeaf() int64 {
	if t.root == invalidID {
		return invalidID
	}
	n := t.arena.node(t.root)
	for n.nodeType == NodeInternal {
		n = t.arena.node(n.children[0])
	}
	return n.id
}
