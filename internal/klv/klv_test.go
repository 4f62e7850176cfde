package klv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNext_Simple verifies a single well-formed record decodes with the
// exact consumed-byte count.
func TestNext_Simple(t *testing.T) {
	it, nread, err := Next([]byte("model:5:count\n"))
	require.NoError(t, err)
	assert.Equal(t, "model", it.Key)
	assert.Equal(t, []byte("count"), it.Value)
	assert.Equal(t, 14, nread, "consumed bytes should cover key, separators, length field, value and terminator")
}

// TestNext_ValueWithDelimiters verifies values may contain ':' and '\n'
// because the length field is authoritative.
func TestNext_ValueWithDelimiters(t *testing.T) {
	it, nread, err := Next([]byte("haystack:7:a:b\nc:d\n"))
	require.NoError(t, err)
	assert.Equal(t, "haystack", it.Key)
	assert.Equal(t, []byte("a:b\nc:d"), it.Value)
	assert.Equal(t, 19, nread)
}

// TestNext_EmptyValue verifies zero-length values are legal.
func TestNext_EmptyValue(t *testing.T) {
	it, _, err := Next([]byte("name:0:\n"))
	require.NoError(t, err)
	assert.Equal(t, "name", it.Key)
	assert.Empty(t, it.Value)
}

// TestNext_Malformed verifies each wire-format violation fails with a
// MalformedRecordError.
func TestNext_Malformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"no pieces", "model"},
		{"one delimiter", "model:5"},
		{"length not a number", "model:x:count\n"},
		{"negative length", "model:-1:count\n"},
		{"declared length exceeds buffer", "model:50:count\n"},
		{"missing terminator", "model:5:count"},
		{"wrong terminator", "model:5:countX"},
		{"length swallows terminator", "haystack:8:a:b\nc:d\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Next([]byte(tc.raw))
			var merr *MalformedRecordError
			require.ErrorAs(t, err, &merr)
		})
	}
}

// TestParse_Sequence verifies a buffer of multiple records decodes in
// order and consumes the whole buffer.
func TestParse_Sequence(t *testing.T) {
	raw := []byte("name:4:test\nmodel:4:grep\npattern:3:foo\n")
	items, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "name", items[0].Key)
	assert.Equal(t, "model", items[1].Key)
	assert.Equal(t, "pattern", items[2].Key)
	assert.Equal(t, []byte("foo"), items[2].Value)
}

// TestParse_TrailingPartialRecord verifies leftover bytes after the
// last complete record fail the parse.
func TestParse_TrailingPartialRecord(t *testing.T) {
	_, err := Parse([]byte("model:4:grep\npatt"))
	var merr *MalformedRecordError
	require.ErrorAs(t, err, &merr)
}

// TestParse_Empty verifies an empty buffer decodes to no items.
func TestParse_Empty(t *testing.T) {
	items, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

// TestAppend_RoundTrip verifies encoding then decoding reproduces the
// items and the bytes exactly.
func TestAppend_RoundTrip(t *testing.T) {
	in := []Item{
		{Key: "name", Value: []byte("bench")},
		{Key: "haystack", Value: []byte("a:b\nc\x00d")},
		{Key: "max-iters", Value: []byte("10")},
		{Key: "empty", Value: nil},
	}
	var raw []byte
	for _, it := range in {
		raw = Append(raw, it)
	}

	out, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].Key, out[i].Key)
		assert.Equal(t, string(in[i].Value), string(out[i].Value))
	}

	var again []byte
	for _, it := range out {
		again = Append(again, it)
	}
	assert.Equal(t, raw, again, "re-encoding decoded items must be byte-identical")
}
