package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagsAreIndependent(t *testing.T) {
	flags := []Flag{C, Z, I, D, B, U, V, N}
	for _, f := range flags {
		c := NewCPU()
		c.status = 0x00
		c.SetFlag(f, true)
		assert.Equal(t, uint8(f), c.status)
		for _, g := range flags {
			assert.Equal(t, f == g, c.GetFlag(g))
		}

		c.status = 0xFF
		c.SetFlag(f, false)
		assert.Equal(t, ^uint8(f), c.status)
		assert.False(t, c.GetFlag(f))
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "nvubdizc", StatusString(0x00))
	assert.Equal(t, "NVUBDIZC", StatusString(0xFF))
	assert.Equal(t, "nvUbdIzC", StatusString(uint8(U)|uint8(I)|uint8(C)))
}
