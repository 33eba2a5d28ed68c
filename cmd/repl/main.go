// Interactive shell over the index.
// Run: go run ./cmd/repl
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	bplus "BPlusIndex/bplustree"

	"github.com/fatih/color"
)

var (
	prompt  = color.New(color.FgCyan)
	errText = color.New(color.FgRed)
)

func main() {
	tree := bplus.NewBPlusTree()
	scanner := bufio.NewScanner(os.Stdin)

	printHelp()

	// REPL
	for {
		prompt.Print("idx> ")

		if !scanner.Scan() { // Ctrl+D pressed
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") {
			break
		}

		processInput(tree, line)
	}
}

func printHelp() {
	fmt.Print(`
B+ Tree Index Shell

Available Commands:
  SET <key> <val> Insert or overwrite an integer pair
  GET <key>       Retrieve the value for key
  STATS           Print key/node counts and tree height
  DUMP            Print the full node dump
  EXIT            Terminate this session

`)
}

func processInput(tree *bplus.BPlusTree, line string) {
	fields := strings.Fields(line)
	command := strings.ToLower(fields[0])

	switch command {
	default:
		errText.Printf("Unknown command %q\n", command)
	case "set":
		processSetCommand(tree, fields[1:])
	case "get":
		processGetCommand(tree, fields[1:])
	case "stats":
		fmt.Printf("keys=%d nodes=%d height=%d\n",
			tree.KeyCount(), tree.NodeCount(), tree.Height())
	case "dump":
		tree.Dump()
	}
}

func processSetCommand(tree *bplus.BPlusTree, args []string) {
	if len(args) != 2 {
		errText.Println("Usage: SET <key> <value>")
		return
	}
	key, err1 := strconv.Atoi(args[0])
	value, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		errText.Println("SET takes integer key and value")
		return
	}
	tree.Insert(key, value)
	fmt.Printf("OK (%d keys)\n", tree.KeyCount())
}

func processGetCommand(tree *bplus.BPlusTree, args []string) {
	if len(args) != 1 {
		errText.Println("Usage: GET <key>")
		return
	}
	key, err := strconv.Atoi(args[0])
	if err != nil {
		errText.Println("GET takes an integer key")
		return
	}
	if value, ok := tree.Search(key); ok {
		fmt.Printf("Key %d => %d\n", key, value)
	} else {
		fmt.Printf("Key %d not found.\n", key)
	}
}
