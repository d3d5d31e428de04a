package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupDocumentedOpcodes(t *testing.T) {
	count := 0
	for op := 0; op < 256; op++ {
		ins := Lookup(uint8(op))
		if ins.Illegal() {
			assert.Equal(t, illegal, ins, "opcode $%02X", op)
			continue
		}
		count++
		assert.Equal(t, ins.Operate.String(), ins.Name, "opcode $%02X", op)
		assert.GreaterOrEqual(t, ins.Cycles, uint8(2), "opcode $%02X", op)
		assert.LessOrEqual(t, ins.Cycles, uint8(7), "opcode $%02X", op)
	}
	assert.Equal(t, 151, count)
}

func TestLookupModes(t *testing.T) {
	for op := 0; op < 256; op++ {
		ins := Lookup(uint8(op))
		switch ins.Operate {
		case BCC, BCS, BEQ, BMI, BNE, BPL, BVC, BVS:
			assert.Equal(t, REL, ins.AddrMode, "opcode $%02X", op)
		default:
			assert.NotEqual(t, REL, ins.AddrMode, "opcode $%02X", op)
		}
	}
	assert.Equal(t, Instruction{"JMP", JMP, IND, 5}, Lookup(0x6C))
	assert.Equal(t, Instruction{"LDA", LDA, IMM, 2}, Lookup(0xA9))
	assert.Equal(t, Instruction{"STA", STA, ZP0, 3}, Lookup(0x85))
	assert.Equal(t, Instruction{"INX", INX, IMP, 2}, Lookup(0xE8))
}

func TestEveryOperationIsUsed(t *testing.T) {
	used := make(map[Operation]bool)
	for op := 0; op < 256; op++ {
		used[Lookup(uint8(op)).Operate] = true
	}
	for op := Operation(0); op < numOperations; op++ {
		assert.True(t, used[op], op.String())
	}
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "ADC", ADC.String())
	assert.Equal(t, "XXX", XXX.String())
	assert.Equal(t, "???", numOperations.String())
	assert.Equal(t, "IZY", IZY.String())
	assert.Equal(t, "???", numAddrModes.String())
}
