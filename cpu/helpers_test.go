package cpu

import "testing"

// mockMem is a flat 64k address space that counts accesses.
type mockMem struct {
	data  [0x10000]uint8
	reads int
	peeks int
}

func (mem *mockMem) CpuRead(addr uint16, readOnly bool) uint8 {
	if readOnly {
		mem.peeks++
	} else {
		mem.reads++
	}
	return mem.data[addr]
}

func (mem *mockMem) CpuWrite(addr uint16, data uint8) {
	mem.data[addr] = data
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for _, b := range bytes {
		mem.data[origin] = b
		origin++
	}
	return origin
}

func (mem *mockMem) setVector(vector uint16, target uint16) {
	mem.data[vector] = uint8(target & 0x00FF)
	mem.data[vector+1] = uint8(target >> 8)
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.data[address] != value {
		t.Errorf("memory at $%04X is $%02X, wanted $%02X", address, mem.data[address], value)
	}
}

// newBareCPU returns a CPU connected to empty memory that has not been reset.
func newBareCPU() (*CPU, *mockMem) {
	mem := &mockMem{}
	c := NewCPU()
	c.ConnectBus(mem)
	return c, mem
}

// newTestCPU loads program at origin, points the reset vector at it and runs
// the reset sequence to completion.
func newTestCPU(origin uint16, program ...uint8) (*CPU, *mockMem) {
	c, mem := newBareCPU()
	mem.putInstructions(origin, program...)
	mem.setVector(VectorReset, origin)
	c.Reset()
	for !c.IsComplete() {
		c.Clock()
	}
	return c, mem
}

// step runs one instruction or interrupt sequence and returns its cycle count.
func step(c *CPU) int {
	n := 0
	for {
		c.Clock()
		n++
		if c.IsComplete() {
			return n
		}
	}
}
