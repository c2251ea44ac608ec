package emu

// Branch and call helpers. Displacements are word-aligned by the
// decoder, so a taken branch always leaves IP 4-byte aligned. IP has
// already been advanced past the current instruction when these run, so
// saved link values name the next instruction.

// branch transfers control to efa.
func (c *Core) branch(efa uint32) {
	c.IP = efa
}

// branchAndLink saves the next-instruction address into the link
// register and branches.
func (c *Core) branchAndLink(efa uint32, link uint8) {
	c.R[link] = c.IP
	c.branch(efa)
}

// storeLocals spills the local register set r0..r15 into the frame save
// area at efa, 4-byte strided.
func (c *Core) storeLocals(efa uint32) {
	for i := uint32(0); i < 16; i++ {
		c.bus.Write32(efa+i*4, c.R[i])
	}
}

// loadLocals reloads r0..r15 from the frame save area at efa.
func (c *Core) loadLocals(efa uint32) {
	for i := uint32(0); i < 16; i++ {
		c.R[i] = c.bus.Read32(efa + i*4)
	}
}

// call allocates a new 64-byte-aligned frame above the stack pointer,
// spills the caller's locals to the caller's frame, links the frames
// and branches. RIP is written before the spill so the saved frame
// carries the return address.
func (c *Core) call(efa uint32) {
	fp := (c.R[RegSP] + 63) &^ 63

	c.R[RegRIP] = c.IP
	c.storeLocals(c.R[RegFP])

	c.R[RegPFP] = c.R[RegFP]
	c.R[RegFP] = fp
	c.R[RegSP] = fp + 64

	c.branch(efa)
}

// PFP return-type codes (low bits of the previous frame pointer).
// Only the local return path is implemented; the fault, system and
// interrupt variants are reserved.
const (
	callLocal   = 0
	callFault   = 1
	callSystem  = 2
	callSystemT = 3
	callIntrS   = 6
	callIntr    = 7
)

// ret tears down the current frame: restore the caller's frame pointer,
// reload the caller's locals and branch to the reloaded RIP.
func (c *Core) ret() {
	c.R[RegFP] = c.R[RegPFP] &^ 63

	c.loadLocals(c.R[RegFP])

	c.branch(c.R[RegRIP])
}

// branchIf branches to efa when the condition mask holds.
func (c *Core) branchIf(mask, efa uint32) {
	if c.checkCond(mask) {
		c.branch(efa)
	}
}

// faultIf raises the constraint-range fault when the condition mask
// holds.
func (c *Core) faultIf(mask uint32) {
	if c.checkCond(mask) {
		c.fault(FaultConstraintRange)
	}
}
