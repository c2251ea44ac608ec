package emu_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/open960/i960sim/emu"
)

var _ = Describe("Core", func() {
	var (
		core *emu.Core
		mem  *emu.Memory
	)

	BeforeEach(func() {
		mem = emu.NewMemory()
		core = emu.NewCore(emu.WithBus(mem))
	})

	Describe("NewCore", func() {
		It("should create a zero-initialized core", func() {
			Expect(core.R).To(Equal([32]uint32{}))
			Expect(core.IP).To(BeZero())
			Expect(core.AC).To(BeZero())
			Expect(core.Bus()).NotTo(BeNil())
		})

		It("should default to an internal memory", func() {
			c := emu.NewCore()

			Expect(c.Bus()).NotTo(BeNil())
		})
	})

	Describe("Step", func() {
		It("should advance IP by one word", func() {
			runOne(core, mem, encodeREG(0x590, 18, 17, 16, false, false))

			Expect(core.IP).To(Equal(testBase + 4))
			Expect(core.InstructionCount()).To(Equal(uint64(1)))
		})

		It("should consume the displacement word of long forms", func() {
			runOne(core, mem, encodeMEMB(0x8C, 16, 0, 0, 0xC, 0), 0x1234)

			Expect(core.IP).To(Equal(testBase + 8))
		})

		It("should report exhaustion of the instruction budget", func() {
			core = emu.NewCore(
				emu.WithBus(mem),
				emu.WithMaxInstructions(1),
			)

			runOne(core, mem, encodeREG(0x590, 18, 17, 16, false, false))
			result := core.Step()

			Expect(result.Err).To(HaveOccurred())
			Expect(core.InstructionCount()).To(Equal(uint64(1)))
		})
	})

	Describe("Run", func() {
		It("should execute until the budget is exhausted", func() {
			// a tight loop: b .-0
			mem.Write32(0x1000, encodeCTRL(0x08, 0))
			core.IP = 0x1000

			core = emu.NewCore(
				emu.WithBus(mem),
				emu.WithMaxInstructions(100),
			)
			core.IP = 0x1000

			Expect(core.Run()).To(Equal(uint64(100)))
		})
	})

	Describe("snapshots", func() {
		It("should round-trip the architectural state", func() {
			core.R[5] = 0x12345678
			core.IP = 0x1000
			core.AC = 0x1002
			core.PC = emu.PCExecMode
			core.TC = 0x00AA00BB

			snap := core.Snapshot()

			other := emu.NewCore()
			other.Restore(snap)

			Expect(other.R).To(Equal(core.R))
			Expect(other.IP).To(Equal(core.IP))
			Expect(other.AC).To(Equal(core.AC))
			Expect(other.PC).To(Equal(core.PC))
			Expect(other.TC).To(Equal(core.TC))
		})

		It("should survive a save/load through a file", func() {
			core.R[10] = 0xCAFEBABE
			core.IP = 0x2000

			path := filepath.Join(GinkgoT().TempDir(), "state.json")
			Expect(core.Snapshot().Save(path)).To(Succeed())

			snap, err := emu.LoadSnapshot(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(snap.R[10]).To(Equal(uint32(0xCAFEBABE)))
			Expect(snap.IP).To(Equal(uint32(0x2000)))
		})

		It("should reject a missing snapshot file", func() {
			_, err := emu.LoadSnapshot(filepath.Join(os.TempDir(), "no-such-snapshot.json"))

			Expect(err).To(HaveOccurred())
		})
	})
})

var _ = Describe("Memory", func() {
	var mem *emu.Memory

	BeforeEach(func() {
		mem = emu.NewMemory()
	})

	It("should read zero from untouched addresses", func() {
		Expect(mem.Read32(0xDEAD0000)).To(BeZero())
		Expect(mem.Read8(0)).To(BeZero())
	})

	It("should store multi-byte values little-endian", func() {
		mem.Write32(0x100, 0x12345678)

		Expect(mem.Read8(0x100)).To(Equal(uint8(0x78)))
		Expect(mem.Read8(0x101)).To(Equal(uint8(0x56)))
		Expect(mem.Read8(0x102)).To(Equal(uint8(0x34)))
		Expect(mem.Read8(0x103)).To(Equal(uint8(0x12)))
		Expect(mem.Read16(0x100)).To(Equal(uint16(0x5678)))
	})

	It("should handle accesses across page boundaries", func() {
		mem.Write32(0xFFE, 0xAABBCCDD)

		Expect(mem.Read32(0xFFE)).To(Equal(uint32(0xAABBCCDD)))
		Expect(mem.Read16(0x1000)).To(Equal(uint16(0xAABB)))
	})

	It("should load images byte for byte", func() {
		mem.LoadImage(0x3000, []byte{0x01, 0x02, 0x03, 0x04})

		Expect(mem.Read32(0x3000)).To(Equal(uint32(0x04030201)))
	})
})
