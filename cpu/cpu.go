package cpu

import "fmt"

// Bus is the memory interface the CPU reads and writes through. A read with
// readOnly set must not cause any side effect in the device being read.
type Bus interface {
	CpuRead(addr uint16, readOnly bool) uint8
	CpuWrite(addr uint16, data uint8)
}

// Interrupt and reset vectors.
const (
	VectorNMI   uint16 = 0xFFFA
	VectorReset uint16 = 0xFFFC
	VectorIRQ   uint16 = 0xFFFE
)

const stackBase = uint16(0x0100)

const (
	resetCycles     = 8
	interruptCycles = 7
)

// CPU emulates a 6502 at instruction granularity. Each call to Clock() is one
// cycle. The opcode is fetched and executed on the first cycle of an
// instruction and the remaining cycles are idle.
type CPU struct {
	accumulator uint8
	xRegister   uint8
	yRegister   uint8
	stkp        uint8
	pc          uint16
	status      uint8

	// cycles left of the current instruction or interrupt
	cycles uint8

	// cycles clocked since the last reset
	clockCount uint64

	// interrupts requested mid-instruction wait here for the next boundary
	pendingIRQ bool
	pendingNMI bool

	// decode state of the most recent instruction, kept for debuggers only
	last decode

	bus    Bus
	lookup *[256]Instruction
}

// Registers is a copy of the architectural registers.
type Registers struct {
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	PC     uint16
	Status uint8
}

func (r Registers) String() string {
	return fmt.Sprintf("A:%02X X:%02X Y:%02X SP:%02X P:%s PC:%04X",
		r.A, r.X, r.Y, r.SP, StatusString(r.Status), r.PC)
}

func NewCPU() *CPU {
	return &CPU{
		status: uint8(U),
		lookup: lookup,
	}
}

// ConnectBus attaches the bus. The CPU does not own it.
func (c *CPU) ConnectBus(bus Bus) {
	c.bus = bus
}

func (c *CPU) read(addr uint16) uint8 {
	return c.bus.CpuRead(addr, false)
}

func (c *CPU) write(addr uint16, data uint8) {
	c.bus.CpuWrite(addr, data)
}

func (c *CPU) readVector(vector uint16) uint16 {
	lo := uint16(c.read(vector))
	hi := uint16(c.read(vector + 1))
	return (hi << 8) | lo
}

// running a CPU without a bus is a programming error.
func (c *CPU) requireBus(op string) {
	if c.bus == nil {
		panic("cpu: " + op + " called with no bus connected")
	}
}

// IsComplete is true on an instruction boundary.
func (c *CPU) IsComplete() bool {
	return c.cycles == 0
}

// Registers returns a copy of the current register values.
func (c *CPU) Registers() Registers {
	return Registers{
		A:      c.accumulator,
		X:      c.xRegister,
		Y:      c.yRegister,
		SP:     c.stkp,
		PC:     c.pc,
		Status: c.status,
	}
}

// SetPC moves the program counter. Only valid on an instruction boundary.
func (c *CPU) SetPC(pc uint16) {
	if c.cycles != 0 {
		panic("cpu: SetPC called mid-instruction")
	}
	c.pc = pc
}

// ClockCount returns the number of cycles clocked since the last reset.
func (c *CPU) ClockCount() uint64 {
	return c.clockCount
}

// Fetch returns the operand of the most recently decoded instruction. Memory
// is read in peek mode so debuggers can call it freely.
func (c *CPU) Fetch() uint8 {
	c.requireBus("fetch")
	if c.last.mode == IMP {
		return c.last.fetched
	}
	return c.bus.CpuRead(c.last.addrAbs, true)
}

// Reset puts the registers into their defined state and loads the PC from the
// reset vector. Takes 8 cycles.
func (c *CPU) Reset() {
	c.requireBus("reset")

	c.pc = c.readVector(VectorReset)

	c.accumulator = 0
	c.xRegister = 0
	c.yRegister = 0
	c.stkp = 0xFD
	c.status = uint8(U) | uint8(I)

	c.last = decode{}
	c.pendingIRQ = false
	c.pendingNMI = false
	c.clockCount = 0

	c.cycles = resetCycles
}

// IRQ requests a maskable interrupt. The request is ignored when the
// interrupt disable flag is set. Mid-instruction requests are serviced on the
// next instruction boundary.
func (c *CPU) IRQ() {
	c.requireBus("irq")
	if c.cycles != 0 {
		c.pendingIRQ = true
		return
	}
	if !c.GetFlag(I) {
		c.interrupt(VectorIRQ)
	}
}

// NMI requests a non-maskable interrupt. Mid-instruction requests are
// serviced on the next instruction boundary.
func (c *CPU) NMI() {
	c.requireBus("nmi")
	if c.cycles != 0 {
		c.pendingNMI = true
		return
	}
	c.interrupt(VectorNMI)
}

func (c *CPU) interrupt(vector uint16) {
	c.push16(c.pc)
	c.push((c.status &^ uint8(B)) | uint8(U))
	c.SetFlag(I, true)
	c.pc = c.readVector(vector)
	c.cycles = interruptCycles
}

// service handles a latched interrupt. NMI wins over IRQ. Returns true if an
// interrupt sequence was started.
func (c *CPU) service() bool {
	if c.pendingNMI {
		c.pendingNMI = false
		c.interrupt(VectorNMI)
		return true
	}
	if c.pendingIRQ {
		c.pendingIRQ = false
		if !c.GetFlag(I) {
			c.interrupt(VectorIRQ)
			return true
		}
	}
	return false
}

// Clock advances the CPU by one cycle.
func (c *CPU) Clock() {
	c.requireBus("clock")

	if c.cycles == 0 && !c.service() {
		c.execute()
	}

	c.cycles--
	c.clockCount++
}

func (c *CPU) execute() {
	d := decode{pc: c.pc}
	d.opcode = c.read(c.pc)
	c.SetFlag(U, true)
	c.pc++

	ins := &c.lookup[d.opcode]
	d.mode = ins.AddrMode
	c.cycles = ins.Cycles

	additionalCycle1 := c.address(&d)
	additionalCycle2 := c.operate(ins.Operate, &d)
	c.cycles += (additionalCycle1 & additionalCycle2) + d.branchCycles

	c.SetFlag(U, true)
	c.last = d
}
