/*
PURPOSE:
  Serializes measurement samples to the output stream. One line per
  sample, `<duration>,<count>`, decimal integers, in execution order,
  no trailing summary line. This is the runner's entire structured
  output; everything else goes to the logger on stderr.

REQUIREMENTS:
  User-specified:
  - Emission order must equal execution order.
  - Keep the stream flushed (per original behavior: results must
    survive a crash mid-run of a later benchmark).

  Implementation-discovered:
  - Two bare integer fields need no quoting, so encoding/csv produces
    exactly the required line format.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Consumes: internal/model.Sample

ERROR HANDLING:
  - Returns error on write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write.
  - Use Mutex if concurrent writes are expected.

USAGE:
  e := output.NewEmitter(os.Stdout)
  err := e.EmitAll(samples)

SELF-HEALING INSTRUCTIONS:
  - If downstream parsers choke, check for quoting: both fields must
    stay bare decimal integers.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - The line format is consumed by the harness side; do not change.
*/

package output

import (
	"encoding/csv"
	"io"
	"strconv"
	"sync"

	"github.com/regexbench/runner/internal/model"
)

// Emitter writes samples as `duration,count` lines.
type Emitter struct {
	writer *csv.Writer
	mu     sync.Mutex
}

// NewEmitter creates an Emitter over w.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{writer: csv.NewWriter(w)}
}

// Emit writes a single sample. It is thread-safe.
func (e *Emitter) Emit(s model.Sample) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	record := []string{
		strconv.FormatInt(int64(s.Duration), 10),
		strconv.Itoa(s.Count),
	}
	if err := e.writer.Write(record); err != nil {
		return err
	}
	e.writer.Flush()
	return e.writer.Error()
}

// EmitAll writes every sample in order.
func (e *Emitter) EmitAll(samples []model.Sample) error {
	for _, s := range samples {
		if err := e.Emit(s); err != nil {
			return err
		}
	}
	return nil
}
