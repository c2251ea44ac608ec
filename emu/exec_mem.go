package emu

import "github.com/open960/i960sim/insts"

// MEM format operations:
//
//	80  ldob    82  stob    C0  ldib    C2  stib
//	88  ldos    8A  stos    C8  ldis    CA  stis
//	90  ld      92  st
//	98  ldl     9A  stl
//	A0  ldt     A2  stt
//	B0  ldq     B2  stq
//
//	84  bx      85  balx    86  callx   8C  lda    AC  dcinva
func (c *Core) execMEM(inst *insts.Instruction, instIP, disp uint32) {
	efa, ok := c.memEFA(inst, instIP, disp)
	if !ok {
		c.onUndef()
		return
	}

	dst := inst.SrcDst

	switch inst.Opcode {
	case 0x80: // ldob
		c.R[dst] = uint32(c.bus.Read8(efa))
	case 0xC0: // ldib
		c.R[dst] = uint32(int32(int8(c.bus.Read8(efa))))
	case 0x88: // ldos
		c.R[dst] = uint32(c.bus.Read16(efa))
	case 0xC8: // ldis
		c.R[dst] = uint32(int32(int16(c.bus.Read16(efa))))
	case 0x90: // ld
		c.R[dst] = c.bus.Read32(efa)
	case 0x98: // ldl
		c.loadGroup(efa, dst, 2)
	case 0xA0: // ldt
		c.loadGroup(efa, dst, 3)
	case 0xB0: // ldq
		c.loadGroup(efa, dst, 4)

	case 0x82: // stob
		c.bus.Write8(efa, uint8(c.R[dst]))
	case 0xC2: // stib
		x := c.R[dst]
		c.bus.Write8(efa, uint8(x))
		if int32(x) != int32(int8(x)) {
			c.onOverflow()
		}
	case 0x8A: // stos
		c.bus.Write16(efa, uint16(c.R[dst]))
	case 0xCA: // stis
		x := c.R[dst]
		c.bus.Write16(efa, uint16(x))
		if int32(x) != int32(int16(x)) {
			c.onOverflow()
		}
	case 0x92: // st
		c.bus.Write32(efa, c.R[dst])
	case 0x9A: // stl
		c.storeGroup(efa, dst, 2)
	case 0xA2: // stt
		c.storeGroup(efa, dst, 3)
	case 0xB2: // stq
		c.storeGroup(efa, dst, 4)

	case 0x84: // bx
		c.branch(efa)
	case 0x85: // balx
		c.branchAndLink(efa, dst)
	case 0x86: // callx
		c.call(efa)
	case 0x8C: // lda
		c.R[dst] = efa
	case 0xAC: // dcinva: cache not modelled

	default:
		c.onUndef()
	}
}

// loadGroup fills count register lanes from consecutive words.
func (c *Core) loadGroup(efa uint32, dst uint8, count uint32) {
	for i := uint32(0); i < count; i++ {
		c.R[uint32(dst)|i] = c.bus.Read32(efa + i*4)
	}
}

// storeGroup writes count register lanes to consecutive words.
func (c *Core) storeGroup(efa uint32, dst uint8, count uint32) {
	for i := uint32(0); i < count; i++ {
		c.bus.Write32(efa+i*4, c.R[uint32(dst)|i])
	}
}

// memEFA derives the effective address from the addressing mode. MEMA
// modes use the 12-bit offset; MEMB modes combine the trailing
// displacement word, the abase register and the scaled index register.
// Mode 6 is reserved and reports failure.
func (c *Core) memEFA(inst *insts.Instruction, instIP, disp uint32) (uint32, bool) {
	base := c.R[inst.Src2]
	index := c.R[inst.Src1] * inst.Scale

	switch inst.Mode {
	case insts.ModeAbase:
		return base, true
	case insts.ModeIPDisp:
		return instIP + 8 + disp, true
	case insts.ModeReserved:
		return 0, false
	case insts.ModeAbaseIndex:
		return base + index, true
	case insts.ModeDisp:
		return disp, true
	case insts.ModeDispAbase:
		return disp + base, true
	case insts.ModeDispIndex:
		return disp + index, true
	case insts.ModeDispAbaseIndx:
		return disp + base + index, true
	default:
		// MEMA: modes 0..3 are the bare offset, 8..B add the abase.
		if inst.Mode&8 != 0 {
			return inst.Offset + base, true
		}
		return inst.Offset, true
	}
}
