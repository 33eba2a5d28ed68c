// Demonstration harness: builds an index from a fixed insert sequence,
// then prints one line per lookup.
// Run: go run .
package main

import (
	"fmt"

	bplus "BPlusIndex/bplustree"
)

func main() {
	tree := bplus.NewBPlusTree()

	pairs := [][2]int{
		{10, 100},
		{20, 200},
		{5, 50},
		{6, 60},
		{15, 150},
		{25, 250},
		{2, 20},
		{16, 160},
		{18, 180},
	}
	for _, p := range pairs {
		tree.Insert(p[0], p[1])
	}

	for _, key := range []int{2, 5, 6, 10, 15, 16, 18, 20, 25, 30} {
		if value, ok := tree.Search(key); ok {
			fmt.Printf("Key %d => %d\n", key, value)
		} else {
			fmt.Printf("Key %d not found.\n", key)
		}
	}
}
