// Package main provides the entry point for i960sim.
// i960sim is a functional Intel 80960 emulator and disassembler.
//
// For the full CLI, use: go run ./cmd/i960sim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("i960sim - Intel 80960 Emulator")
	fmt.Println("")
	fmt.Println("Usage: i960sim <command> [options] <image.bin>")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  run        Execute a flat memory image")
	fmt.Println("  dasm       Disassemble a flat memory image")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/i960sim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/i960sim' instead.")
	}
}
