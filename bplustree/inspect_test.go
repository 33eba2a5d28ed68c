package bplus

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDumpEmptyTree(t *testing.T) {
	tree := NewBPlusTree()

	var buf bytes.Buffer
	tree.DumpTo(&buf)
	require.Contains(t, buf.String(), "(empty tree)")
}

func TestDumpShowsLevels(t *testing.T) {
	tree := NewBPlusTree()
	for key := 1; key <= 10; key++ {
		tree.Insert(key, key*10)
	}

	var buf bytes.Buffer
	tree.DumpTo(&buf)
	out := buf.String()

	require.Contains(t, out, "Level 0:")
	require.Contains(t, out, "Level 1:")
	require.Contains(t, out, "Level 2:")
	require.Contains(t, out, "INTERNAL")
	require.Contains(t, out, "LEAF")
	require.Contains(t, out, "10 -> 100")
}

func TestStats(t *testing.T) {
	tree := NewBPlusTree()
	require.Equal(t, 0, tree.Height())
	require.Equal(t, 0, tree.NodeCount())
	require.Equal(t, 0, tree.KeyCount())

	tree.Insert(1, 1)
	require.Equal(t, 1, tree.Height())
	require.Equal(t, 1, tree.NodeCount())

	for key := 2; key <= 100; key++ {
		tree.Insert(key, key)
	}
	require.Equal(t, 100, tree.KeyCount())

	// Upserts change no counts.
	nodes := tree.NodeCount()
	tree.Insert(50, 999)
	require.Equal(t, nodes, tree.NodeCount())
	require.Equal(t, 100, tree.KeyCount())
}
