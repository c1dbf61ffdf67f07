package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturno/sexpr/source"
)

func TestBufferLines(t *testing.T) {
	buf := source.New("test", []byte("a\n\nb"))

	require.Equal(t, 3, buf.NumLines())

	line, ok := buf.Line(1)
	require.True(t, ok)
	assert.Equal(t, "a", line)

	line, ok = buf.Line(2)
	require.True(t, ok)
	assert.Equal(t, "", line)

	line, ok = buf.Line(3)
	require.True(t, ok)
	assert.Equal(t, "b", line)

	_, ok = buf.Line(4)
	assert.False(t, ok)
}

func TestBufferLinesCRLF(t *testing.T) {
	buf := source.New("test", []byte("a\r\nb\r\n"))

	line, ok := buf.Line(1)
	require.True(t, ok)
	assert.Equal(t, "a", line)

	line, ok = buf.Line(2)
	require.True(t, ok)
	assert.Equal(t, "b", line)
}

func TestBufferAt(t *testing.T) {
	buf := source.New("test", []byte("xyz"))

	c, ok := buf.At(1)
	require.True(t, ok)
	assert.Equal(t, byte('x'), c)

	c, ok = buf.At(3)
	require.True(t, ok)
	assert.Equal(t, byte('z'), c)

	_, ok = buf.At(4)
	assert.False(t, ok)

	_, ok = buf.At(0)
	assert.False(t, ok)
}

func TestBufferEmpty(t *testing.T) {
	buf := source.New("empty", nil)
	assert.Equal(t, 1, buf.NumLines())
	line, ok := buf.Line(1)
	require.True(t, ok)
	assert.Equal(t, "", line)
}
