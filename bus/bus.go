package bus

import "nes-core/cpu"

const ramSize = 64 * 1024

// Device is a memory mapped peripheral. Devices are asked first and return
// true when they claim the address. A read with readOnly set must leave the
// device unchanged.
type Device interface {
	CpuRead(addr uint16, data *uint8, readOnly bool) bool
	CpuWrite(addr uint16, data uint8) bool
}

// Bus owns the address space and the CPU connected to it.
type Bus struct {
	systemClockCounter uint64
	cpuRam             []uint8
	cpu                *cpu.CPU
	devices            []Device
}

// NewBus creates a bus with zeroed RAM and a CPU connected to it.
func NewBus() *Bus {
	b := &Bus{
		cpuRam: make([]uint8, ramSize),
		cpu:    cpu.NewCPU(),
	}
	b.cpu.ConnectBus(b)
	return b
}

// CPU returns the CPU attached to the bus.
func (b *Bus) CPU() *cpu.CPU {
	return b.cpu
}

// Attach adds a device to the bus. Devices are consulted in the order they
// were attached, before RAM.
func (b *Bus) Attach(d Device) {
	b.devices = append(b.devices, d)
}

func (b *Bus) CpuWrite(addr uint16, data uint8) {
	for _, d := range b.devices {
		if d.CpuWrite(addr, data) {
			return
		}
	}
	b.cpuRam[addr] = data
}

func (b *Bus) CpuRead(addr uint16, readOnly bool) uint8 {
	data := uint8(0)
	for _, d := range b.devices {
		if d.CpuRead(addr, &data, readOnly) {
			return data
		}
	}
	return b.cpuRam[addr]
}

// Load copies program into RAM starting at origin. Addresses wrap at $FFFF.
// Attached devices are bypassed.
func (b *Bus) Load(origin uint16, program []byte) {
	addr := origin
	for _, v := range program {
		b.cpuRam[addr] = v
		addr++
	}
}

// SetVector writes target little-endian at vector.
func (b *Bus) SetVector(vector uint16, target uint16) {
	b.CpuWrite(vector, uint8(target&0x00FF))
	b.CpuWrite(vector+1, uint8(target>>8))
}

// Reset resets the CPU and the system clock. RAM is left alone.
func (b *Bus) Reset() {
	b.cpu.Reset()
	b.systemClockCounter = 0
}

// Clock advances the system by one cycle.
func (b *Bus) Clock() {
	b.cpu.Clock()
	b.systemClockCounter++
}

// SystemClock returns the number of cycles since the last reset.
func (b *Bus) SystemClock() uint64 {
	return b.systemClockCounter
}

// Step clocks until the current instruction, interrupt or reset sequence
// completes and returns the number of cycles it took.
func (b *Bus) Step() int {
	n := 0
	for {
		b.Clock()
		n++
		if b.cpu.IsComplete() {
			return n
		}
	}
}
