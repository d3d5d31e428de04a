package cpu

import "nes-core/logger"

// operate executes op against the resolved operand in d. The return value is
// 1 when the operation takes an extra cycle on a page crossing.
func (c *CPU) operate(op Operation, d *decode) uint8 {
	switch op {
	case ADC:
		return c.adc(d)
	case AND:
		return c.and(d)
	case ASL:
		return c.asl(d)
	case BCC:
		return c.branchIf(d, !c.GetFlag(C))
	case BCS:
		return c.branchIf(d, c.GetFlag(C))
	case BEQ:
		return c.branchIf(d, c.GetFlag(Z))
	case BIT:
		return c.bit(d)
	case BMI:
		return c.branchIf(d, c.GetFlag(N))
	case BNE:
		return c.branchIf(d, !c.GetFlag(Z))
	case BPL:
		return c.branchIf(d, !c.GetFlag(N))
	case BRK:
		return c.brk(d)
	case BVC:
		return c.branchIf(d, !c.GetFlag(V))
	case BVS:
		return c.branchIf(d, c.GetFlag(V))
	case CLC:
		c.SetFlag(C, false)
		return 0
	case CLD:
		c.SetFlag(D, false)
		return 0
	case CLI:
		c.SetFlag(I, false)
		return 0
	case CLV:
		c.SetFlag(V, false)
		return 0
	case CMP:
		c.compare(c.accumulator, c.fetch(d))
		return 1
	case CPX:
		c.compare(c.xRegister, c.fetch(d))
		return 0
	case CPY:
		c.compare(c.yRegister, c.fetch(d))
		return 0
	case DEC:
		return c.dec(d)
	case DEX:
		c.xRegister--
		c.setZN(c.xRegister)
		return 0
	case DEY:
		c.yRegister--
		c.setZN(c.yRegister)
		return 0
	case EOR:
		c.accumulator ^= c.fetch(d)
		c.setZN(c.accumulator)
		return 1
	case INC:
		return c.inc(d)
	case INX:
		c.xRegister++
		c.setZN(c.xRegister)
		return 0
	case INY:
		c.yRegister++
		c.setZN(c.yRegister)
		return 0
	case JMP:
		c.pc = d.addrAbs
		return 0
	case JSR:
		return c.jsr(d)
	case LDA:
		c.accumulator = c.fetch(d)
		c.setZN(c.accumulator)
		return 1
	case LDX:
		c.xRegister = c.fetch(d)
		c.setZN(c.xRegister)
		return 1
	case LDY:
		c.yRegister = c.fetch(d)
		c.setZN(c.yRegister)
		return 1
	case LSR:
		return c.lsr(d)
	case NOP:
		return 0
	case ORA:
		c.accumulator |= c.fetch(d)
		c.setZN(c.accumulator)
		return 1
	case PHA:
		c.push(c.accumulator)
		return 0
	case PHP:
		// the pushed copy has B and U set, the live register is untouched
		c.push(c.status | uint8(B) | uint8(U))
		return 0
	case PLA:
		c.accumulator = c.pull()
		c.setZN(c.accumulator)
		return 0
	case PLP:
		c.status = c.pull()
		c.SetFlag(B, false)
		c.SetFlag(U, true)
		return 0
	case ROL:
		return c.rol(d)
	case ROR:
		return c.ror(d)
	case RTI:
		return c.rti(d)
	case RTS:
		c.pc = c.pull16()
		c.pc++
		return 0
	case SBC:
		// subtraction is addition of the one's complement
		c.add(^c.fetch(d))
		return 1
	case SEC:
		c.SetFlag(C, true)
		return 0
	case SED:
		c.SetFlag(D, true)
		return 0
	case SEI:
		c.SetFlag(I, true)
		return 0
	case STA:
		c.write(d.addrAbs, c.accumulator)
		return 0
	case STX:
		c.write(d.addrAbs, c.xRegister)
		return 0
	case STY:
		c.write(d.addrAbs, c.yRegister)
		return 0
	case TAX:
		c.xRegister = c.accumulator
		c.setZN(c.xRegister)
		return 0
	case TAY:
		c.yRegister = c.accumulator
		c.setZN(c.yRegister)
		return 0
	case TSX:
		c.xRegister = c.stkp
		c.setZN(c.xRegister)
		return 0
	case TXA:
		c.accumulator = c.xRegister
		c.setZN(c.accumulator)
		return 0
	case TXS:
		c.stkp = c.xRegister
		return 0
	case TYA:
		c.accumulator = c.yRegister
		c.setZN(c.accumulator)
		return 0
	case XXX:
		return c.xxx(d)
	}
	panic("cpu: unknown operation " + op.String())
}

// fetch loads the operand into d unless the mode is implied, in which case the
// accumulator captured by the addressing mode is used.
func (c *CPU) fetch(d *decode) uint8 {
	if d.mode != IMP {
		d.fetched = c.read(d.addrAbs)
	}
	return d.fetched
}

func (c *CPU) setZN(v uint8) {
	c.SetFlag(Z, v == 0x00)
	c.SetFlag(N, v&0x80 != 0)
}

// store writes the result of a read-modify-write operation back to the
// accumulator or to memory depending on the addressing mode.
func (c *CPU) store(d *decode, v uint8) {
	if d.mode == IMP {
		c.accumulator = v
		return
	}
	c.write(d.addrAbs, v)
}

func (c *CPU) add(value uint8) {
	temp := uint16(c.accumulator) + uint16(value) + c.carry()
	c.SetFlag(C, temp > 0x00FF)
	c.SetFlag(Z, (temp&0x00FF) == 0)
	overflow := (^(uint16(c.accumulator) ^ uint16(value))) & (uint16(c.accumulator) ^ temp) & 0x0080
	c.SetFlag(V, overflow != 0)
	c.SetFlag(N, (temp&0x0080) != 0)
	c.accumulator = uint8(temp & 0x00FF)
}

func (c *CPU) adc(d *decode) uint8 {
	c.add(c.fetch(d))
	return 1
}

func (c *CPU) and(d *decode) uint8 {
	c.accumulator &= c.fetch(d)
	c.setZN(c.accumulator)
	return 1
}

func (c *CPU) asl(d *decode) uint8 {
	temp := uint16(c.fetch(d)) << 1
	c.SetFlag(C, (temp&0xFF00) > 0)
	c.SetFlag(Z, (temp&0x00FF) == 0x00)
	c.SetFlag(N, temp&0x80 != 0)
	c.store(d, uint8(temp&0x00FF))
	return 0
}

func (c *CPU) lsr(d *decode) uint8 {
	v := c.fetch(d)
	c.SetFlag(C, v&0x01 != 0)
	temp := v >> 1
	c.SetFlag(Z, temp == 0x00)
	c.SetFlag(N, false)
	c.store(d, temp)
	return 0
}

func (c *CPU) rol(d *decode) uint8 {
	temp := (uint16(c.fetch(d)) << 1) | c.carry()
	c.SetFlag(C, (temp&0xFF00) != 0)
	c.SetFlag(Z, (temp&0x00FF) == 0x0000)
	c.SetFlag(N, (temp&0x0080) != 0)
	c.store(d, uint8(temp&0x00FF))
	return 0
}

func (c *CPU) ror(d *decode) uint8 {
	v := c.fetch(d)
	temp := uint8(c.carry()<<7) | (v >> 1)
	c.SetFlag(C, v&0x01 != 0)
	c.SetFlag(Z, temp == 0x00)
	c.SetFlag(N, temp&0x80 != 0)
	c.store(d, temp)
	return 0
}

func (c *CPU) bit(d *decode) uint8 {
	v := c.fetch(d)
	c.SetFlag(Z, c.accumulator&v == 0x00)
	c.SetFlag(N, v&(1<<7) != 0)
	c.SetFlag(V, v&(1<<6) != 0)
	return 0
}

func (c *CPU) compare(reg uint8, v uint8) {
	temp := uint16(reg) - uint16(v)
	c.SetFlag(C, reg >= v)
	c.SetFlag(Z, (temp&0x00FF) == 0x0000)
	c.SetFlag(N, (temp&0x0080) != 0)
}

func (c *CPU) dec(d *decode) uint8 {
	temp := c.fetch(d) - 1
	c.write(d.addrAbs, temp)
	c.setZN(temp)
	return 0
}

func (c *CPU) inc(d *decode) uint8 {
	temp := c.fetch(d) + 1
	c.write(d.addrAbs, temp)
	c.setZN(temp)
	return 0
}

// branchIf moves the PC by the relative offset when cond holds. A taken
// branch costs one cycle, and one more if it lands on a different page from
// the instruction that follows it.
func (c *CPU) branchIf(d *decode, cond bool) uint8 {
	if !cond {
		return 0
	}
	d.branchCycles++
	d.addrAbs = c.pc + d.addrRel
	if (d.addrAbs & 0xFF00) != (c.pc & 0xFF00) {
		d.branchCycles++
	}
	c.pc = d.addrAbs
	return 0
}

func (c *CPU) brk(d *decode) uint8 {
	// skip the padding byte that follows BRK
	c.pc++
	c.push16(c.pc)
	c.push(c.status | uint8(B) | uint8(U))
	c.SetFlag(I, true)
	c.pc = c.readVector(VectorIRQ)
	return 0
}

func (c *CPU) jsr(d *decode) uint8 {
	c.pc--
	c.push16(c.pc)
	c.pc = d.addrAbs
	return 0
}

func (c *CPU) rti(d *decode) uint8 {
	c.status = c.pull()
	c.SetFlag(B, false)
	c.SetFlag(U, true)
	c.pc = c.pull16()
	return 0
}

// xxx is the catch-all for undocumented opcodes.
func (c *CPU) xxx(d *decode) uint8 {
	logger.Logf("cpu", "illegal opcode $%02X at $%04X", d.opcode, d.pc)
	return 0
}

func (c *CPU) push(v uint8) {
	c.write(stackBase+uint16(c.stkp), v)
	c.stkp--
}

func (c *CPU) pull() uint8 {
	c.stkp++
	return c.read(stackBase + uint16(c.stkp))
}

func (c *CPU) push16(v uint16) {
	c.push(uint8((v >> 8) & 0x00FF))
	c.push(uint8(v & 0x00FF))
}

func (c *CPU) pull16() uint16 {
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	return (hi << 8) | lo
}
