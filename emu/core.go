// Package emu provides functional i960 emulation.
package emu

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/open960/i960sim/insts"
)

// Register aliases. Registers 0..15 are the local set, 16..31 the
// global set (g0..g15).
const (
	RegPFP = 0  // r0, previous frame pointer
	RegSP  = 1  // r1, stack pointer
	RegRIP = 2  // r2, return instruction pointer
	RegLP  = 30 // g14, link pointer
	RegFP  = 31 // g15, frame pointer
)

// Arithmetic Controls bits.
const (
	ACCondMask = 0x7     // condition code, low three bits
	ACOverflow = 1 << 8  // sticky integer-overflow flag
	ACOverMask = 1 << 12 // overflow mask: suppress fault, set flag
	ACNoImprec = 1 << 15 // no-imprecise-faults bit
)

// Process Controls bits.
const (
	PCTraceEnable  = 1 << 0
	PCExecMode     = 1 << 1 // 1 = supervisor
	PCTraceFaultP  = 1 << 10
	PCState        = 1 << 13
	PCPriorityPos  = 16
	PCPriorityMask = 0x1F
)

// Interrupt control register, memory-mapped.
const (
	ICONAddr   = 0xFF008510
	ICONGIEPos = 10 // global interrupt enable
)

// Bus is the host-provided memory interface. Multi-byte values are
// little-endian. Narrow stores receive the low bits of the register.
type Bus interface {
	Read8(addr uint32) uint8
	Read16(addr uint32) uint16
	Read32(addr uint32) uint32
	Write8(addr uint32, x uint8)
	Write16(addr uint32, x uint16)
	Write32(addr uint32, x uint32)
}

// FaultFunc enters the host fault pipeline with an architectural fault
// type code. The core never returns errors for faults; it calls this
// hook and continues per-instruction semantics (a faulting divide, for
// example, leaves its destination unwritten).
type FaultFunc func(kind uint32)

// CallsFunc performs the supervisor call-table transfer for the calls
// instruction. Its behavior is outside the core.
type CallsFunc func(proc uint32)

// StepResult represents the result of executing a single instruction.
type StepResult struct {
	// Err is set for host-level conditions (instruction budget
	// exhausted), never for architectural faults.
	Err error
}

// Core holds the i960 architectural state and executes instructions
// against a host-provided bus. All state is one aggregate; there is no
// process-wide singleton.
type Core struct {
	// R is the register file: r0..r15 local, g0..g15 global.
	R [32]uint32

	// IP is the instruction pointer (byte address, word-aligned).
	IP uint32

	// AC, PC and TC are the arithmetic, process and trace controls.
	AC uint32
	PC uint32
	TC uint32

	bus     Bus
	lock    sync.Locker
	fault   FaultFunc
	calls   CallsFunc
	decoder *insts.Decoder

	stderr io.Writer

	instructionCount uint64
	maxInstructions  uint64 // 0 means no limit
}

// CoreOption is a functional option for configuring the Core.
type CoreOption func(*Core)

// WithBus sets the memory bus.
func WithBus(bus Bus) CoreOption {
	return func(c *Core) {
		c.bus = bus
	}
}

// WithFaultHandler sets the fault hook.
func WithFaultHandler(fault FaultFunc) CoreOption {
	return func(c *Core) {
		c.fault = fault
	}
}

// WithCallsHandler sets the supervisor-call hook.
func WithCallsHandler(calls CallsFunc) CoreOption {
	return func(c *Core) {
		c.calls = calls
	}
}

// WithLocker sets the lock primitive bracketing atomic
// read-modify-write operations. On a single-threaded host the default
// no-op locker is sufficient; a concurrent host passes a real mutex.
func WithLocker(lock sync.Locker) CoreOption {
	return func(c *Core) {
		c.lock = lock
	}
}

// WithStderr sets a custom stderr writer.
func WithStderr(w io.Writer) CoreOption {
	return func(c *Core) {
		c.stderr = w
	}
}

// WithMaxInstructions sets the maximum number of instructions to
// execute. A value of 0 means no limit.
func WithMaxInstructions(max uint64) CoreOption {
	return func(c *Core) {
		c.maxInstructions = max
	}
}

// noopLocker satisfies sync.Locker without doing anything.
type noopLocker struct{}

func (noopLocker) Lock()   {}
func (noopLocker) Unlock() {}

// NewCore creates a zero-initialized i960 core.
func NewCore(opts ...CoreOption) *Core {
	c := &Core{
		decoder: insts.NewDecoder(),
		lock:    noopLocker{},
		stderr:  os.Stderr,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.bus == nil {
		c.bus = NewMemory()
	}
	if c.fault == nil {
		c.fault = func(kind uint32) {
			fmt.Fprintf(c.stderr, "i960: fault 0x%05X near ip 0x%08X\n", kind, c.IP)
		}
	}
	if c.calls == nil {
		c.calls = func(uint32) {}
	}

	return c
}

// Bus returns the core's memory bus.
func (c *Core) Bus() Bus {
	return c.bus
}

// InstructionCount returns the number of instructions executed.
func (c *Core) InstructionCount() uint64 {
	return c.instructionCount
}

// Step fetches, decodes and executes a single instruction. IP is
// advanced past the instruction before execution, so link values saved
// by bal/balx/call name the next instruction; control transfers then
// overwrite IP.
func (c *Core) Step() StepResult {
	if c.maxInstructions > 0 && c.instructionCount >= c.maxInstructions {
		return StepResult{
			Err: fmt.Errorf("max instructions reached"),
		}
	}

	instIP := c.IP
	word := c.bus.Read32(instIP)
	inst := c.decoder.Decode(word)

	var disp uint32
	if inst.NeedsDisp {
		disp = c.bus.Read32(instIP + 4)
	}

	c.IP = instIP + inst.Size()
	c.execute(inst, instIP, disp)
	c.instructionCount++

	return StepResult{}
}

// Run executes instructions until the instruction budget is exhausted.
// It returns the number of instructions executed.
func (c *Core) Run() uint64 {
	for {
		if result := c.Step(); result.Err != nil {
			return c.instructionCount
		}
	}
}

// execute dispatches a decoded instruction to its format executor.
func (c *Core) execute(inst *insts.Instruction, instIP, disp uint32) {
	switch inst.Format {
	case insts.FormatCTRL:
		c.execCTRL(inst, instIP)
	case insts.FormatCOBR:
		c.execCOBR(inst, instIP)
	case insts.FormatREG:
		c.execREG(inst)
	case insts.FormatMEM:
		c.execMEM(inst, instIP, disp)
	default:
		c.onUndef()
	}
}
