package emu

import "github.com/open960/i960sim/insts"

// CTRL format operations:
//
//	08  b        10  bno      18  faultno
//	09  call     11  bg       19  faultg
//	0A  ret      12  be       1A  faulte
//	0B  bal      13  bge      1B  faultge
//	             14  bl       1C  faultl
//	             15  bne      1D  faultne
//	             16  ble      1E  faultle
//	             17  bo       1F  faulto
//
// The displacement base is the address of the instruction itself. Bit 0
// of the word must be clear; bit 1 is the prediction hint, ignored
// semantically.
func (c *Core) execCTRL(inst *insts.Instruction, instIP uint32) {
	if inst.Raw&1 != 0 {
		c.onUndef()
		return
	}

	efa := instIP + uint32(inst.Disp)

	switch op := inst.Opcode; {
	case op == 0x08:
		c.branch(efa)
	case op == 0x09:
		c.call(efa)
	case op == 0x0A:
		c.ret()
	case op == 0x0B:
		c.branchAndLink(efa, RegLP)
	case op >= 0x10 && op <= 0x17:
		c.branchIf(op&7, efa)
	case op >= 0x18 && op <= 0x1F:
		c.faultIf(op & 7)
	default:
		c.onUndef()
	}
}
