// Package monitor holds the pieces of the debug front end that do not need a
// window: loading raw program images and tracing execution as text.
package monitor

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"nes-core/bus"
	"nes-core/cpu"
	"nes-core/logger"
)

// ParseAddress reads a 16 bit hex address. A leading $ or 0x is allowed.
func ParseAddress(s string) (uint16, error) {
	t := strings.TrimPrefix(s, "$")
	t = strings.TrimPrefix(strings.TrimPrefix(t, "0x"), "0X")
	v, err := strconv.ParseUint(t, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("monitor: address %q: %w", s, err)
	}
	return uint16(v), nil
}

// Load copies the raw image in filename into RAM at origin. If the image does
// not provide a reset vector one is written pointing at origin.
func Load(nes *bus.Bus, filename string, origin uint16) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("monitor: loading program: %w", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("monitor: loading program: %s is empty", filename)
	}
	if len(data) > 0x10000 {
		return fmt.Errorf("monitor: loading program: %s is larger than the address space", filename)
	}

	nes.Load(origin, data)
	logger.Logf("monitor", "loaded %d bytes at $%04X", len(data), origin)

	if !covers(origin, len(data), cpu.VectorReset) || !covers(origin, len(data), cpu.VectorReset+1) {
		nes.SetVector(cpu.VectorReset, origin)
		logger.Logf("monitor", "reset vector set to $%04X", origin)
	}

	return nil
}

// covers is true if addr falls inside an image of length n loaded at origin,
// allowing for the image wrapping around the top of memory.
func covers(origin uint16, n int, addr uint16) bool {
	return int(addr-origin) < n
}
