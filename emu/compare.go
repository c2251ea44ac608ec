package emu

// setCond replaces the condition code (the low three bits of AC).
func (c *Core) setCond(cc uint32) {
	c.AC = (c.AC & ^uint32(ACCondMask)) | cc
}

// Cond returns the current condition code.
func (c *Core) Cond() uint32 {
	return c.AC & ACCondMask
}

// cmp compares a against b, ordinal or integer, and sets the condition
// code: less 0b100, equal 0b010, greater 0b001.
func (c *Core) cmp(a, b uint32, integer bool) {
	var lt bool
	if integer {
		lt = int32(a) < int32(b)
	} else {
		lt = a < b
	}

	switch {
	case lt:
		c.setCond(4)
	case a == b:
		c.setCond(2)
	default:
		c.setCond(1)
	}
}

// concmp performs the conditional compare: only when condition-code bit
// 2 is clear, set the code to 0b010 for a <= b and 0b001 otherwise.
func (c *Core) concmp(a, b uint32, integer bool) {
	if c.AC&4 != 0 {
		return
	}

	var le bool
	if integer {
		le = int32(a) <= int32(b)
	} else {
		le = a <= b
	}

	if le {
		c.setCond(2)
	} else {
		c.setCond(1)
	}
}

// checkCond evaluates a 3-bit condition mask against the condition
// code. The condition holds when the mask and the code share a bit, or
// when both are zero (the "no condition" encoding).
func (c *Core) checkCond(mask uint32) bool {
	cc := c.AC & ACCondMask
	return cc&mask != 0 || cc == mask
}
