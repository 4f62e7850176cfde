package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regexbench/runner/internal/model"
)

// TestEmitter_Format verifies each sample becomes one
// `duration,count` line, in order, with no header or summary.
func TestEmitter_Format(t *testing.T) {
	buf := new(bytes.Buffer)
	e := NewEmitter(buf)

	err := e.EmitAll([]model.Sample{
		{Duration: 1500 * time.Nanosecond, Count: 3},
		{Duration: 42, Count: 0},
		{Duration: 2 * time.Second, Count: 1016745},
	})
	require.NoError(t, err)
	assert.Equal(t, "1500,3\n42,0\n2000000000,1016745\n", buf.String())
}

// TestEmitter_Empty verifies no samples means no output at all.
func TestEmitter_Empty(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, NewEmitter(buf).EmitAll(nil))
	assert.Zero(t, buf.Len())
}

// TestEmitter_FlushPerWrite verifies each Emit is visible immediately.
func TestEmitter_FlushPerWrite(t *testing.T) {
	buf := new(bytes.Buffer)
	e := NewEmitter(buf)
	require.NoError(t, e.Emit(model.Sample{Duration: 10, Count: 2}))
	assert.Equal(t, "10,2\n", buf.String())
}
