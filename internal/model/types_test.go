package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHaystack_Modes verifies the tagged union preserves contents and
// mode across accessors.
func TestHaystack_Modes(t *testing.T) {
	txt := Text("snow☃")
	assert.True(t, txt.IsText())
	assert.Equal(t, 7, txt.Len(), "Len counts UTF-8 bytes, not runes")
	assert.Equal(t, "snow☃", txt.String())
	assert.Equal(t, []byte("snow☃"), txt.Raw())

	raw := Bytes([]byte{0xff, 0x61})
	assert.False(t, raw.IsText())
	assert.Equal(t, 2, raw.Len())
	assert.Equal(t, []byte{0xff, 0x61}, raw.Raw())
}

// TestHaystack_Rewrap verifies Rewrap follows the receiver's mode.
func TestHaystack_Rewrap(t *testing.T) {
	assert.True(t, Text("x").Rewrap("y").IsText())
	assert.False(t, Bytes([]byte("x")).Rewrap("y").IsText())
	assert.Equal(t, "y", Bytes([]byte("x")).Rewrap("y").String())
}

// TestLines_Basic verifies LF splitting with the trailing empty line
// dropped.
func TestLines_Basic(t *testing.T) {
	lines := Bytes([]byte("foo\nbar\nfoobar\n")).Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "foo", lines[0].String())
	assert.Equal(t, "bar", lines[1].String())
	assert.Equal(t, "foobar", lines[2].String())
}

// TestLines_NoTrailingNewline verifies the last line survives without
// a final '\n'.
func TestLines_NoTrailingNewline(t *testing.T) {
	lines := Bytes([]byte("foo\nbar")).Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "bar", lines[1].String())
}

// TestLines_CRLF verifies exactly one trailing '\r' is stripped per
// line.
func TestLines_CRLF(t *testing.T) {
	lines := Bytes([]byte("foo\r\nbar\r\r\n")).Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "foo", lines[0].String())
	assert.Equal(t, "bar\r", lines[1].String())
}

// TestLines_UnicodeSeparatorsIgnored verifies only literal '\n'
// breaks lines; U+2028 and friends do not.
func TestLines_UnicodeSeparatorsIgnored(t *testing.T) {
	lines := Text("a bc").Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "a bc", lines[0].String())
}

// TestLines_KeepsMode verifies lines inherit the haystack's mode.
func TestLines_KeepsMode(t *testing.T) {
	for _, line := range Text("a\nb\n").Lines() {
		assert.True(t, line.IsText())
	}
	for _, line := range Bytes([]byte("a\nb\n")).Lines() {
		assert.False(t, line.IsText())
	}
}

// TestLines_Empty verifies the empty haystack yields no lines.
func TestLines_Empty(t *testing.T) {
	assert.Empty(t, Bytes(nil).Lines())
	assert.Empty(t, Text("").Lines())
}
