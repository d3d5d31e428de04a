package monitor

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nes-core/bus"
	"nes-core/cpu"
)

func writeImage(t *testing.T, data []byte) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "program.bin")
	require.NoError(t, os.WriteFile(filename, data, 0o644))
	return filename
}

func TestParseAddress(t *testing.T) {
	for _, s := range []string{"8000", "$8000", "0x8000", "0X8000"} {
		v, err := ParseAddress(s)
		assert.NoError(t, err, s)
		assert.Equal(t, uint16(0x8000), v, s)
	}

	_, err := ParseAddress("10000")
	assert.Error(t, err)
	_, err = ParseAddress("zz")
	assert.Error(t, err)
}

func TestLoadSetsResetVector(t *testing.T) {
	nes := bus.NewBus()
	filename := writeImage(t, []byte{0xA9, 0x05, 0x85, 0x10, 0xE8})

	require.NoError(t, Load(nes, filename, 0xC000))
	assert.Equal(t, uint8(0xA9), nes.CpuRead(0xC000, true))
	assert.Equal(t, uint8(0x00), nes.CpuRead(cpu.VectorReset, true))
	assert.Equal(t, uint8(0xC0), nes.CpuRead(cpu.VectorReset+1, true))
}

func TestLoadKeepsImageVector(t *testing.T) {
	nes := bus.NewBus()
	image := make([]byte, 0x100)
	image[0xFC] = 0x34
	image[0xFD] = 0x12

	require.NoError(t, Load(nes, writeImage(t, image), 0xFF00))
	assert.Equal(t, uint8(0x34), nes.CpuRead(cpu.VectorReset, true))
	assert.Equal(t, uint8(0x12), nes.CpuRead(cpu.VectorReset+1, true))
}

func TestLoadErrors(t *testing.T) {
	nes := bus.NewBus()
	assert.Error(t, Load(nes, filepath.Join(t.TempDir(), "missing.bin"), 0x8000))
	assert.Error(t, Load(nes, writeImage(t, nil), 0x8000))
	assert.Error(t, Load(nes, writeImage(t, make([]byte, 0x10001)), 0x8000))
}

func TestCovers(t *testing.T) {
	assert.True(t, covers(0x8000, 1, 0x8000))
	assert.False(t, covers(0x8000, 1, 0x8001))
	assert.True(t, covers(0xFFFE, 4, 0x0001))
	assert.False(t, covers(0x8000, 0x7FFC, 0xFFFC))
	assert.True(t, covers(0x8000, 0x8000, 0xFFFD))
}

func TestTrace(t *testing.T) {
	nes := bus.NewBus()
	require.NoError(t, Load(nes, writeImage(t, []byte{0xA9, 0x05, 0x85, 0x10, 0xE8}), 0x8000))
	nes.Reset()
	nes.Step()

	b := &bytes.Buffer{}
	Trace(b, nes, 3)

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "$8000: LDA #$05 {IMM}"), lines[0])
	assert.True(t, strings.HasSuffix(lines[0], "A:00 X:00 Y:00 SP:FD P:nvUbdIzc PC:8000 CYC:8"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "$8002: STA $10 {ZP0}"), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], "A:05 X:00 Y:00 SP:FD P:nvUbdIzc PC:8002 CYC:10"), lines[1])
	assert.True(t, strings.HasSuffix(lines[2], "PC:8004 CYC:13"), lines[2])

	assert.Equal(t, uint8(0x01), nes.CPU().Registers().X)
}

func TestDumpPage(t *testing.T) {
	nes := bus.NewBus()
	nes.Load(0x0010, []byte{0xDE, 0xAD})

	b := &bytes.Buffer{}
	DumpPage(b, nes, 0x00, 16)
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 16)
	assert.Equal(t, "$0010: DE AD 00 00 00 00 00 00 00 00 00 00 00 00 00 00", lines[1])

	b.Reset()
	DumpPage(b, nes, 0x00, 32)
	assert.Len(t, strings.Split(strings.TrimSpace(b.String()), "\n"), 8)
}

func TestColumns(t *testing.T) {
	assert.Equal(t, 16, Columns(&bytes.Buffer{}))
	assert.Equal(t, 32, columnsForWidth(120))
	assert.Equal(t, 16, columnsForWidth(80))
	assert.Equal(t, 8, columnsForWidth(40))
}
