// Package insts provides i960 instruction definitions and decoding.
//
// This package implements decoding of 80960 machine code into structured
// instruction representations. The architecture uses four encoding
// formats, selected by the top four bits of the instruction word:
//   - CTRL: branches, call/ret and fault-if-condition (24-bit displacement)
//   - COBR: test, bit-branch and compare-and-branch (13-bit displacement)
//   - REG:  register-to-register operations (12-bit split opcode)
//   - MEM:  loads, stores and address computation (one or two words)
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst := decoder.Decode(0x5CA80612) // mov g2, g5
//	fmt.Printf("Format: %v, Opcode: 0x%03X\n", inst.Format, inst.Opcode)
package insts
