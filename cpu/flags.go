package cpu

// Flag is a single bit of the status register.
type Flag uint8

const (
	C = Flag(1 << 0) // carry
	Z = Flag(1 << 1) // zero
	I = Flag(1 << 2) // disable interrupts
	D = Flag(1 << 3) // decimal mode, stored but unused
	B = Flag(1 << 4) // break
	U = Flag(1 << 5) // unused, always reads as 1
	V = Flag(1 << 6) // overflow
	N = Flag(1 << 7) // negative
)

func (c *CPU) GetFlag(flag Flag) bool {
	return c.status&uint8(flag) != 0
}

func (c *CPU) SetFlag(flag Flag, v bool) {
	if v {
		c.status |= uint8(flag)
	} else {
		c.status &= ^uint8(flag)
	}
}

// carry returns the carry flag as an addend.
func (c *CPU) carry() uint16 {
	if c.GetFlag(C) {
		return 1
	}
	return 0
}

// StatusString renders the status register as NVUBDIZC, upper case for set bits.
func StatusString(status uint8) string {
	const set = "NVUBDIZC"
	const unset = "nvubdizc"
	s := make([]byte, 8)
	for i := 0; i < 8; i++ {
		if status&(0x80>>i) != 0 {
			s[i] = set[i]
		} else {
			s[i] = unset[i]
		}
	}
	return string(s)
}
