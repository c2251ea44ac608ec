package emu

import "github.com/open960/i960sim/insts"

// COBR format operations:
//
//	20  testno   28  -        30  bbc      38  cmpibno
//	21  testg    29  -        31  cmpobg   39  cmpibg
//	22  teste    2A  -        32  cmpobe   3A  cmpibe
//	23  testge   2B  -        33  cmpobge  3B  cmpibge
//	24  testl    2C  -        34  cmpobl   3C  cmpibl
//	25  testne   2D  -        35  cmpobne  3D  cmpibne
//	26  testle   2E  -        36  cmpoble  3E  cmpible
//	27  testo    2F  -        37  bbs      3F  cmpibo
func (c *Core) execCOBR(inst *insts.Instruction, instIP uint32) {
	ai := inst.SrcDst
	a := c.R[ai]
	if inst.M1 {
		a = uint32(ai)
	}
	b := c.R[inst.Src2]
	efa := instIP + uint32(inst.Disp)

	switch op := inst.Opcode; {
	case op >= 0x20 && op <= 0x27:
		// test<cc> writes the condition outcome into src1/dst.
		c.R[ai] = boolToWord(c.checkCond(op & 7))
	case op == 0x30 || op == 0x37:
		c.cobrBitBranch(op, a, b, efa)
	case op >= 0x31 && op <= 0x3F:
		// cmpob<cc> is ordinal, cmpib<cc> integer (bit 3).
		c.cmp(a, b, op&8 != 0)
		c.branchIf(op&7, efa)
	default:
		c.onUndef()
	}
}

// cobrBitBranch tests bit a of b against the expected value (bbc 0,
// bbs 1), records the outcome in the condition code (0b010 on match)
// and branches on a match.
func (c *Core) cobrBitBranch(op, a, b, efa uint32) {
	expected := op & 1
	ok := bitSelect(b, a) == expected

	if ok {
		c.setCond(2)
		c.branch(efa)
	} else {
		c.setCond(0)
	}
}
