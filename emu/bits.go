package emu

// Bit access helpers. Shift counts are masked to the word width, the
// way the hardware barrel shifter behaves.

// bitSelect returns bit pos of x.
func bitSelect(x, pos uint32) uint32 {
	return (x >> (pos & 31)) & 1
}

// bitMask returns a word with only bit pos set.
func bitMask(pos uint32) uint32 {
	return 1 << (pos & 31)
}

// extract returns the count-bit field of x starting at pos.
func extract(x, pos, count uint32) uint32 {
	return (x >> (pos & 31)) & ^(^uint32(0) << count)
}

// modify merges new into old under mask.
func modify(old, new, mask uint32) uint32 {
	return (old & ^mask) | (new & mask)
}

func setBit(x, pos uint32) uint32 {
	return x | bitMask(pos)
}

func clrBit(x, pos uint32) uint32 {
	return x & ^bitMask(pos)
}

func notBit(x, pos uint32) uint32 {
	return x ^ bitMask(pos)
}

// Multi-precision adder helpers. Each returns the wrapped 32-bit result
// and the carry (or borrow) out, so add/adc and sub/sbb chains preserve
// the exact carry bit.

func add(x, y uint32) (uint32, uint32) {
	r := x + y
	if r < x {
		return r, 1
	}
	return r, 0
}

func adc(x, y, ci uint32) (uint32, uint32) {
	a, c1 := add(y, ci)
	r, c2 := add(x, a)
	return r, c1 + c2
}

func sub(x, y uint32) (uint32, uint32) {
	r := x - y
	if r > x {
		return r, 1
	}
	return r, 0
}

func sbb(x, y, ci uint32) (uint32, uint32) {
	a, c1 := add(y, ci)
	r, c2 := sub(x, a)
	return r, c1 + c2
}

// addOverflows reports signed overflow of r = a + b: the operand signs
// agree and the result sign differs.
func addOverflows(a, b, r uint32) bool {
	return int32(^(a^b)&(b^r)) < 0
}

func boolToWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
