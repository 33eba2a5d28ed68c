// Seed program: fills a fresh index with random records created with
// go-faker and reports its shape.
// Run: go run ./cmd/seed -records 500 [-dump]
package main

import (
	"flag"
	"fmt"
	"log"

	bplus "BPlusIndex/bplustree"

	"github.com/go-faker/faker/v4"
)

var numRecords *int
var shouldDump *bool

func main() {
	setupFlags()

	// RandomInt with three arguments yields unique values, so every
	// seeded key is distinct.
	keys, err := faker.RandomInt(1, 1_000_000, *numRecords)
	if err != nil {
		log.Fatalf("generate keys: %v", err)
	}
	values, err := faker.RandomInt(1, 1_000_000, *numRecords)
	if err != nil {
		log.Fatalf("generate values: %v", err)
	}

	tree := bplus.NewBPlusTree()
	for i, key := range keys {
		tree.Insert(key, values[i])
	}

	fmt.Printf("Inserted %d records\n", len(keys))
	fmt.Printf("  Keys:   %d\n", tree.KeyCount())
	fmt.Printf("  Nodes:  %d\n", tree.NodeCount())
	fmt.Printf("  Height: %d\n", tree.Height())

	if *shouldDump {
		fmt.Println()
		tree.Dump()
	}
}

func setupFlags() {
	numRecords = flag.Int("records", 100, "Amount of records to seed the index with.")
	shouldDump = flag.Bool("dump", false, "Print the full node dump after seeding.")
	flag.Usage = func() {
		fmt.Println("\nIndex seeder\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}
