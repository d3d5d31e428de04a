package cpu

import "fmt"

// Disassembly is one decoded line, linked to its neighbours by address.
type Disassembly struct {
	Instruction  string
	PreviousAddr uint16
	NextAddr     uint16
}

// Disassemble decodes memory between start and stop inclusive. The bus is
// read in peek mode. Lines are keyed by address because instructions vary in
// length.
func (c *CPU) Disassemble(start uint16, stop uint16) map[uint16]Disassembly {
	c.requireBus("disassemble")

	peek := func(addr uint32) uint8 {
		return c.bus.CpuRead(uint16(addr), true)
	}

	addr := uint32(start)
	lines := make(map[uint16]Disassembly)
	lineAddr := uint16(0)
	for addr <= uint32(stop) {
		previousAddr := lineAddr
		lineAddr = uint16(addr)

		opcode := peek(addr)
		addr++
		ins := c.lookup[opcode]
		s := fmt.Sprintf("$%04X: %s ", lineAddr, ins.Name)

		switch ins.AddrMode {
		case IMP:
			s += "{IMP}"
		case IMM:
			value := peek(addr)
			addr++
			s += fmt.Sprintf("#$%02X {IMM}", value)
		case ZP0:
			lo := peek(addr)
			addr++
			s += fmt.Sprintf("$%02X {ZP0}", lo)
		case ZPX:
			lo := peek(addr)
			addr++
			s += fmt.Sprintf("$%02X, X {ZPX}", lo)
		case ZPY:
			lo := peek(addr)
			addr++
			s += fmt.Sprintf("$%02X, Y {ZPY}", lo)
		case IZX:
			lo := peek(addr)
			addr++
			s += fmt.Sprintf("($%02X, X) {IZX}", lo)
		case IZY:
			lo := peek(addr)
			addr++
			s += fmt.Sprintf("($%02X), Y {IZY}", lo)
		case ABS, ABX, ABY, IND:
			lo := peek(addr)
			addr++
			hi := peek(addr)
			addr++
			operand := (uint16(hi) << 8) | uint16(lo)
			switch ins.AddrMode {
			case ABS:
				s += fmt.Sprintf("$%04X {ABS}", operand)
			case ABX:
				s += fmt.Sprintf("$%04X, X {ABX}", operand)
			case ABY:
				s += fmt.Sprintf("$%04X, Y {ABY}", operand)
			case IND:
				s += fmt.Sprintf("($%04X) {IND}", operand)
			}
		case REL:
			value := peek(addr)
			addr++
			rel := uint16(value)
			if rel&0x80 != 0 {
				rel |= 0xFF00
			}
			s += fmt.Sprintf("$%02X [$%04X] {REL}", value, uint16(addr)+rel)
		}

		lines[lineAddr] = Disassembly{
			Instruction:  s,
			PreviousAddr: previousAddr,
			NextAddr:     uint16(addr),
		}
	}
	return lines
}
