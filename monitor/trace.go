package monitor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"nes-core/bus"
)

// Trace runs the given number of instructions, writing one line per
// instruction with the register state before it executed.
func Trace(w io.Writer, nes *bus.Bus, steps int) {
	c := nes.CPU()
	for i := 0; i < steps; i++ {
		r := c.Registers()
		line := c.Disassemble(r.PC, r.PC)[r.PC].Instruction
		fmt.Fprintf(w, "%-34s %s CYC:%d\n", line, r, c.ClockCount())
		nes.Step()
	}
}

// DumpPage writes the 256 bytes of a memory page as hex, columns bytes per
// row. Memory is read in peek mode.
func DumpPage(w io.Writer, nes *bus.Bus, page uint8, columns int) {
	addr := uint16(page) << 8
	for row := 0; row < 256/columns; row++ {
		s := strings.Builder{}
		s.WriteString(fmt.Sprintf("$%04X:", addr))
		for col := 0; col < columns; col++ {
			s.WriteString(fmt.Sprintf(" %02X", nes.CpuRead(addr, true)))
			addr++
		}
		s.WriteString("\n")
		io.WriteString(w, s.String())
	}
}

// Columns picks a hex dump row width that fits the terminal behind w. Rows
// are 8, 16 or 32 bytes wide. Anything that isn't a terminal gets 16.
func Columns(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 16
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 16
	}
	return columnsForWidth(width)
}

func columnsForWidth(width int) int {
	// "$0000:" then three characters per byte
	for _, n := range []int{32, 16} {
		if 6+n*3 <= width {
			return n
		}
	}
	return 8
}
