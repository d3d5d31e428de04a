package cpu

// Operation identifies the semantics an opcode executes.
type Operation uint8

const (
	XXX Operation = iota
	ADC
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA
	numOperations
)

var operationNames = [numOperations]string{
	"XXX", "ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI", "BNE", "BPL", "BRK", "BVC", "BVS",
	"CLC", "CLD", "CLI", "CLV", "CMP", "CPX", "CPY", "DEC", "DEX", "DEY", "EOR", "INC", "INX", "INY",
	"JMP", "JSR", "LDA", "LDX", "LDY", "LSR", "NOP", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL", "ROR",
	"RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA", "STX", "STY", "TAX", "TAY", "TSX", "TXA", "TXS",
	"TYA",
}

func (o Operation) String() string {
	if o >= numOperations {
		return "???"
	}
	return operationNames[o]
}

// AddrMode identifies how an opcode's operand address is computed.
type AddrMode uint8

const (
	IMP AddrMode = iota // implied, operand is the accumulator
	IMM                 // immediate
	ZP0                 // zero page
	ZPX                 // zero page, X
	ZPY                 // zero page, Y
	REL                 // relative
	ABS                 // absolute
	ABX                 // absolute, X
	ABY                 // absolute, Y
	IND                 // indirect
	IZX                 // indexed indirect (zp,X)
	IZY                 // indirect indexed (zp),Y
	numAddrModes
)

var addrModeNames = [numAddrModes]string{
	"IMP", "IMM", "ZP0", "ZPX", "ZPY", "REL", "ABS", "ABX", "ABY", "IND", "IZX", "IZY",
}

func (m AddrMode) String() string {
	if m >= numAddrModes {
		return "???"
	}
	return addrModeNames[m]
}

// Instruction describes one entry of the opcode table.
type Instruction struct {
	Name     string
	Operate  Operation
	AddrMode AddrMode
	Cycles   uint8
}

// Illegal reports whether the entry is the catch-all for an undocumented opcode.
func (i Instruction) Illegal() bool {
	return i.Operate == XXX
}

var illegal = Instruction{"???", XXX, IMP, 2}

var documented = map[uint8]Instruction{
	0x00: {"BRK", BRK, IMP, 7}, 0x01: {"ORA", ORA, IZX, 6}, 0x05: {"ORA", ORA, ZP0, 3},
	0x06: {"ASL", ASL, ZP0, 5}, 0x08: {"PHP", PHP, IMP, 3}, 0x09: {"ORA", ORA, IMM, 2},
	0x0A: {"ASL", ASL, IMP, 2}, 0x0D: {"ORA", ORA, ABS, 4}, 0x0E: {"ASL", ASL, ABS, 6},

	0x10: {"BPL", BPL, REL, 2}, 0x11: {"ORA", ORA, IZY, 5}, 0x15: {"ORA", ORA, ZPX, 4},
	0x16: {"ASL", ASL, ZPX, 6}, 0x18: {"CLC", CLC, IMP, 2}, 0x19: {"ORA", ORA, ABY, 4},
	0x1D: {"ORA", ORA, ABX, 4}, 0x1E: {"ASL", ASL, ABX, 7},

	0x20: {"JSR", JSR, ABS, 6}, 0x21: {"AND", AND, IZX, 6}, 0x24: {"BIT", BIT, ZP0, 3},
	0x25: {"AND", AND, ZP0, 3}, 0x26: {"ROL", ROL, ZP0, 5}, 0x28: {"PLP", PLP, IMP, 4},
	0x29: {"AND", AND, IMM, 2}, 0x2A: {"ROL", ROL, IMP, 2}, 0x2C: {"BIT", BIT, ABS, 4},
	0x2D: {"AND", AND, ABS, 4}, 0x2E: {"ROL", ROL, ABS, 6},

	0x30: {"BMI", BMI, REL, 2}, 0x31: {"AND", AND, IZY, 5}, 0x35: {"AND", AND, ZPX, 4},
	0x36: {"ROL", ROL, ZPX, 6}, 0x38: {"SEC", SEC, IMP, 2}, 0x39: {"AND", AND, ABY, 4},
	0x3D: {"AND", AND, ABX, 4}, 0x3E: {"ROL", ROL, ABX, 7},

	0x40: {"RTI", RTI, IMP, 6}, 0x41: {"EOR", EOR, IZX, 6}, 0x45: {"EOR", EOR, ZP0, 3},
	0x46: {"LSR", LSR, ZP0, 5}, 0x48: {"PHA", PHA, IMP, 3}, 0x49: {"EOR", EOR, IMM, 2},
	0x4A: {"LSR", LSR, IMP, 2}, 0x4C: {"JMP", JMP, ABS, 3}, 0x4D: {"EOR", EOR, ABS, 4},
	0x4E: {"LSR", LSR, ABS, 6},

	0x50: {"BVC", BVC, REL, 2}, 0x51: {"EOR", EOR, IZY, 5}, 0x55: {"EOR", EOR, ZPX, 4},
	0x56: {"LSR", LSR, ZPX, 6}, 0x58: {"CLI", CLI, IMP, 2}, 0x59: {"EOR", EOR, ABY, 4},
	0x5D: {"EOR", EOR, ABX, 4}, 0x5E: {"LSR", LSR, ABX, 7},

	0x60: {"RTS", RTS, IMP, 6}, 0x61: {"ADC", ADC, IZX, 6}, 0x65: {"ADC", ADC, ZP0, 3},
	0x66: {"ROR", ROR, ZP0, 5}, 0x68: {"PLA", PLA, IMP, 4}, 0x69: {"ADC", ADC, IMM, 2},
	0x6A: {"ROR", ROR, IMP, 2}, 0x6C: {"JMP", JMP, IND, 5}, 0x6D: {"ADC", ADC, ABS, 4},
	0x6E: {"ROR", ROR, ABS, 6},

	0x70: {"BVS", BVS, REL, 2}, 0x71: {"ADC", ADC, IZY, 5}, 0x75: {"ADC", ADC, ZPX, 4},
	0x76: {"ROR", ROR, ZPX, 6}, 0x78: {"SEI", SEI, IMP, 2}, 0x79: {"ADC", ADC, ABY, 4},
	0x7D: {"ADC", ADC, ABX, 4}, 0x7E: {"ROR", ROR, ABX, 7},

	0x81: {"STA", STA, IZX, 6}, 0x84: {"STY", STY, ZP0, 3}, 0x85: {"STA", STA, ZP0, 3},
	0x86: {"STX", STX, ZP0, 3}, 0x88: {"DEY", DEY, IMP, 2}, 0x8A: {"TXA", TXA, IMP, 2},
	0x8C: {"STY", STY, ABS, 4}, 0x8D: {"STA", STA, ABS, 4}, 0x8E: {"STX", STX, ABS, 4},

	0x90: {"BCC", BCC, REL, 2}, 0x91: {"STA", STA, IZY, 6}, 0x94: {"STY", STY, ZPX, 4},
	0x95: {"STA", STA, ZPX, 4}, 0x96: {"STX", STX, ZPY, 4}, 0x98: {"TYA", TYA, IMP, 2},
	0x99: {"STA", STA, ABY, 5}, 0x9A: {"TXS", TXS, IMP, 2}, 0x9D: {"STA", STA, ABX, 5},

	0xA0: {"LDY", LDY, IMM, 2}, 0xA1: {"LDA", LDA, IZX, 6}, 0xA2: {"LDX", LDX, IMM, 2},
	0xA4: {"LDY", LDY, ZP0, 3}, 0xA5: {"LDA", LDA, ZP0, 3}, 0xA6: {"LDX", LDX, ZP0, 3},
	0xA8: {"TAY", TAY, IMP, 2}, 0xA9: {"LDA", LDA, IMM, 2}, 0xAA: {"TAX", TAX, IMP, 2},
	0xAC: {"LDY", LDY, ABS, 4}, 0xAD: {"LDA", LDA, ABS, 4}, 0xAE: {"LDX", LDX, ABS, 4},

	0xB0: {"BCS", BCS, REL, 2}, 0xB1: {"LDA", LDA, IZY, 5}, 0xB4: {"LDY", LDY, ZPX, 4},
	0xB5: {"LDA", LDA, ZPX, 4}, 0xB6: {"LDX", LDX, ZPY, 4}, 0xB8: {"CLV", CLV, IMP, 2},
	0xB9: {"LDA", LDA, ABY, 4}, 0xBA: {"TSX", TSX, IMP, 2}, 0xBC: {"LDY", LDY, ABX, 4},
	0xBD: {"LDA", LDA, ABX, 4}, 0xBE: {"LDX", LDX, ABY, 4},

	0xC0: {"CPY", CPY, IMM, 2}, 0xC1: {"CMP", CMP, IZX, 6}, 0xC4: {"CPY", CPY, ZP0, 3},
	0xC5: {"CMP", CMP, ZP0, 3}, 0xC6: {"DEC", DEC, ZP0, 5}, 0xC8: {"INY", INY, IMP, 2},
	0xC9: {"CMP", CMP, IMM, 2}, 0xCA: {"DEX", DEX, IMP, 2}, 0xCC: {"CPY", CPY, ABS, 4},
	0xCD: {"CMP", CMP, ABS, 4}, 0xCE: {"DEC", DEC, ABS, 6},

	0xD0: {"BNE", BNE, REL, 2}, 0xD1: {"CMP", CMP, IZY, 5}, 0xD5: {"CMP", CMP, ZPX, 4},
	0xD6: {"DEC", DEC, ZPX, 6}, 0xD8: {"CLD", CLD, IMP, 2}, 0xD9: {"CMP", CMP, ABY, 4},
	0xDD: {"CMP", CMP, ABX, 4}, 0xDE: {"DEC", DEC, ABX, 7},

	0xE0: {"CPX", CPX, IMM, 2}, 0xE1: {"SBC", SBC, IZX, 6}, 0xE4: {"CPX", CPX, ZP0, 3},
	0xE5: {"SBC", SBC, ZP0, 3}, 0xE6: {"INC", INC, ZP0, 5}, 0xE8: {"INX", INX, IMP, 2},
	0xE9: {"SBC", SBC, IMM, 2}, 0xEA: {"NOP", NOP, IMP, 2}, 0xEC: {"CPX", CPX, ABS, 4},
	0xED: {"SBC", SBC, ABS, 4}, 0xEE: {"INC", INC, ABS, 6},

	0xF0: {"BEQ", BEQ, REL, 2}, 0xF1: {"SBC", SBC, IZY, 5}, 0xF5: {"SBC", SBC, ZPX, 4},
	0xF6: {"INC", INC, ZPX, 6}, 0xF8: {"SED", SED, IMP, 2}, 0xF9: {"SBC", SBC, ABY, 4},
	0xFD: {"SBC", SBC, ABX, 4}, 0xFE: {"INC", INC, ABX, 7},
}

// the table is shared by every CPU and never written after init
var lookup = buildLookup()

func buildLookup() *[256]Instruction {
	var table [256]Instruction
	for i := range table {
		table[i] = illegal
	}
	for opcode, ins := range documented {
		table[opcode] = ins
	}
	return &table
}

// Lookup returns the table entry for opcode.
func Lookup(opcode uint8) Instruction {
	return lookup[opcode]
}
