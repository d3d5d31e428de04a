package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisassemble(t *testing.T) {
	c, mem := newTestCPU(0x8000,
		0xA9, 0x05, // LDA #$05
		0x85, 0x10, // STA $10
		0xE8,       // INX
		0xD0, 0xFB, // BNE $8002
		0x6C, 0xFF, 0x30, // JMP ($30FF)
		0xB1, 0x20, // LDA ($20),Y
		0x02, // illegal
	)
	reads := mem.reads

	lines := c.Disassemble(0x8000, 0x800C)
	assert.Equal(t, reads, mem.reads)

	want := []struct {
		addr uint16
		text string
		next uint16
	}{
		{0x8000, "$8000: LDA #$05 {IMM}", 0x8002},
		{0x8002, "$8002: STA $10 {ZP0}", 0x8004},
		{0x8004, "$8004: INX {IMP}", 0x8005},
		{0x8005, "$8005: BNE $FB [$8002] {REL}", 0x8007},
		{0x8007, "$8007: JMP ($30FF) {IND}", 0x800A},
		{0x800A, "$800A: LDA ($20), Y {IZY}", 0x800C},
		{0x800C, "$800C: ??? {IMP}", 0x800D},
	}
	require.Len(t, lines, len(want))

	previous := uint16(0)
	for _, w := range want {
		line, ok := lines[w.addr]
		require.True(t, ok, "no line at $%04X", w.addr)
		assert.Equal(t, w.text, line.Instruction)
		assert.Equal(t, w.next, line.NextAddr)
		assert.Equal(t, previous, line.PreviousAddr)
		previous = w.addr
	}
}

func TestDisassembleTopOfMemory(t *testing.T) {
	c, mem := newBareCPU()
	mem.putInstructions(0xFFFE, 0xEA, 0xEA)
	lines := c.Disassemble(0xFFFE, 0xFFFF)
	assert.Len(t, lines, 2)
	assert.Equal(t, uint16(0x0000), lines[0xFFFF].NextAddr)
}
