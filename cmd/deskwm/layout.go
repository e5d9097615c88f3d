package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"deskwm/internal/layout"
)

func printLayoutUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: deskwm layout <command>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  list             List saved layouts")
	fmt.Fprintln(w, "  show <name>      Print a saved layout as JSON")
	fmt.Fprintln(w, "  delete <name>    Delete a saved layout")
}

func runLayout(args []string) int {
	if len(args) == 0 {
		printLayoutUsage(os.Stderr)
		return 2
	}

	store, err := layout.NewStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	switch args[0] {
	case "list":
		return runLayoutList(store)
	case "show":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: deskwm layout show <name>")
			return 2
		}
		return runLayoutShow(store, args[1])
	case "delete":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: deskwm layout delete <name>")
			return 2
		}
		return runLayoutDelete(store, args[1])
	case "help", "-h", "--help":
		printLayoutUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown layout command: %s\n\n", args[0])
		printLayoutUsage(os.Stderr)
		return 2
	}
}

func runLayoutList(store *layout.Store) int {
	names, err := store.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if len(names) == 0 {
		fmt.Println("No saved layouts.")
		return 0
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return 0
}

func runLayoutShow(store *layout.Store, name string) int {
	snap, err := store.Load(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Println(string(data))
	return 0
}

func runLayoutDelete(store *layout.Store, name string) int {
	if err := store.Delete(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Printf("Deleted layout %q\n", name)
	return 0
}
