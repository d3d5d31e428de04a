package cpu

// decode is the scratch state of a single instruction. A fresh value is made
// for every opcode fetch and handed from the addressing mode to the operation.
type decode struct {
	pc      uint16 // address of the opcode
	opcode  uint8
	mode    AddrMode
	fetched uint8
	addrAbs uint16
	addrRel uint16

	// cycles added by a taken branch, independent of the page penalty rule
	branchCycles uint8
}

// address resolves the operand of d. The return value is 1 when the mode
// crossed a page and the operation may need an extra cycle.
func (c *CPU) address(d *decode) uint8 {
	switch d.mode {
	case IMP:
		return c.imp(d)
	case IMM:
		return c.imm(d)
	case ZP0:
		return c.zp0(d)
	case ZPX:
		return c.zpx(d)
	case ZPY:
		return c.zpy(d)
	case REL:
		return c.rel(d)
	case ABS:
		return c.abs(d)
	case ABX:
		return c.abx(d)
	case ABY:
		return c.aby(d)
	case IND:
		return c.ind(d)
	case IZX:
		return c.izx(d)
	case IZY:
		return c.izy(d)
	}
	panic("cpu: unknown addressing mode " + d.mode.String())
}

func (c *CPU) imp(d *decode) uint8 {
	d.fetched = c.accumulator
	return 0
}

func (c *CPU) imm(d *decode) uint8 {
	d.addrAbs = c.pc
	c.pc++
	return 0
}

func (c *CPU) zp0(d *decode) uint8 {
	d.addrAbs = uint16(c.read(c.pc))
	c.pc++
	d.addrAbs &= 0x00FF
	return 0
}

func (c *CPU) zpx(d *decode) uint8 {
	d.addrAbs = uint16(c.read(c.pc)) + uint16(c.xRegister)
	c.pc++
	d.addrAbs &= 0x00FF
	return 0
}

func (c *CPU) zpy(d *decode) uint8 {
	d.addrAbs = uint16(c.read(c.pc)) + uint16(c.yRegister)
	c.pc++
	d.addrAbs &= 0x00FF
	return 0
}

// rel only reads the offset. the branch adds it to the PC when taken.
func (c *CPU) rel(d *decode) uint8 {
	d.addrRel = uint16(c.read(c.pc))
	c.pc++
	if d.addrRel&0x80 != 0 {
		d.addrRel |= 0xFF00
	}
	return 0
}

func (c *CPU) abs(d *decode) uint8 {
	lo := c.read(c.pc)
	c.pc++
	hi := c.read(c.pc)
	c.pc++
	d.addrAbs = (uint16(hi) << 8) | uint16(lo)
	return 0
}

func (c *CPU) abx(d *decode) uint8 {
	return c.absIndexed(d, c.xRegister)
}

func (c *CPU) aby(d *decode) uint8 {
	return c.absIndexed(d, c.yRegister)
}

func (c *CPU) absIndexed(d *decode, index uint8) uint8 {
	lo := c.read(c.pc)
	c.pc++
	hi := c.read(c.pc)
	c.pc++

	d.addrAbs = (uint16(hi) << 8) | uint16(lo)
	d.addrAbs += uint16(index)

	if (d.addrAbs & 0xFF00) != (uint16(hi) << 8) {
		return 1
	}
	return 0
}

// ind reproduces the hardware bug where a pointer ending in $FF fetches its
// high byte from the start of the same page.
func (c *CPU) ind(d *decode) uint8 {
	ptrLo := c.read(c.pc)
	c.pc++
	ptrHi := c.read(c.pc)
	c.pc++

	ptr := (uint16(ptrHi) << 8) | uint16(ptrLo)
	if ptrLo == 0xFF {
		d.addrAbs = (uint16(c.read(ptr&0xFF00)) << 8) | uint16(c.read(ptr))
		return 0
	}

	d.addrAbs = (uint16(c.read(ptr+1)) << 8) | uint16(c.read(ptr))
	return 0
}

func (c *CPU) izx(d *decode) uint8 {
	t := uint16(c.read(c.pc))
	c.pc++

	lo := uint16(c.read((t + uint16(c.xRegister)) & 0x00FF))
	hi := uint16(c.read((t + uint16(c.xRegister) + 1) & 0x00FF))
	d.addrAbs = (hi << 8) | lo
	return 0
}

func (c *CPU) izy(d *decode) uint8 {
	t := uint16(c.read(c.pc))
	c.pc++

	lo := uint16(c.read(t & 0x00FF))
	hi := uint16(c.read((t + 1) & 0x00FF))

	d.addrAbs = (hi << 8) | lo
	d.addrAbs += uint16(c.yRegister)

	if (d.addrAbs & 0xFF00) != (hi << 8) {
		return 1
	}
	return 0
}
