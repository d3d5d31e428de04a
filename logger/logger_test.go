package logger

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	l := newLogger(4)
	b := &bytes.Buffer{}

	assert.False(t, l.write(b))

	l.log("test", "this is a test")
	l.write(b)
	assert.Equal(t, "test: this is a test\n", b.String())

	b.Reset()
	l.log("test2", "this is another\ntest")
	l.write(b)
	assert.Equal(t, "test: this is a test\ntest2: this is anothertest\n", b.String())

	b.Reset()
	l.tail(b, 1)
	assert.Equal(t, "test2: this is anothertest\n", b.String())

	b.Reset()
	l.tail(b, 100)
	assert.Equal(t, "test: this is a test\ntest2: this is anothertest\n", b.String())
}

func TestRepeats(t *testing.T) {
	l := newLogger(4)
	b := &bytes.Buffer{}

	l.log("cpu", "illegal opcode")
	l.log("cpu", "illegal opcode")
	l.log("cpu", "illegal opcode")
	l.write(b)
	assert.Equal(t, "cpu: illegal opcode (repeat x3)\n", b.String())

	l.log("bus", "illegal opcode")
	assert.Len(t, l.copy(), 2)
}

func TestMaxEntries(t *testing.T) {
	l := newLogger(4)
	for i := 0; i < 10; i++ {
		l.log("tag", fmt.Sprintf("entry %d", i))
	}
	entries := l.copy()
	assert.Len(t, entries, 4)
	assert.Equal(t, "entry 6", entries[0].Detail)
	assert.Equal(t, "entry 9", entries[3].Detail)

	l.clear()
	assert.Len(t, l.copy(), 0)
}

func TestEcho(t *testing.T) {
	l := newLogger(4)
	b := &bytes.Buffer{}
	l.setEcho(b)

	l.log("tag", "one")
	l.log("tag", "one")
	assert.Equal(t, "tag: one\ntag: one (repeat x2)\n", b.String())

	l.setEcho(nil)
	l.log("tag", "two")
	assert.Equal(t, "tag: one\ntag: one (repeat x2)\n", b.String())
}

func TestCentral(t *testing.T) {
	Clear()
	Logf("monitor", "loaded %d bytes at $%04X", 5, 0x8000)

	b := &bytes.Buffer{}
	assert.True(t, Write(b))
	assert.Equal(t, "monitor: loaded 5 bytes at $8000\n", b.String())

	Clear()
	b.Reset()
	assert.False(t, Write(b))
}
