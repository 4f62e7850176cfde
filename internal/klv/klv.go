/*
PURPOSE:
  Implements the KLV (key-length-value) wire format used to pass a
  benchmark configuration into the runner over a byte stream.
  Each record is `<key>:<len>:<value>\n` where the value may contain
  arbitrary bytes, including '\n', because the length is explicit.

REQUIREMENTS:
  User-specified:
  - Decode a full buffer into a sequence of (key, value) items.
  - Malformed input must fail predictably, never partially succeed.

  Implementation-discovered:
  - Next() must report exact bytes consumed so callers advance a
    cursor without re-scanning.
  - Encoding support is needed so benchmark definitions can be turned
    back into a KLV stream (and for round-trip testing).

ARCHITECTURE INTEGRATION:
  - Used by: internal/config (decode), internal/cli klv command (encode)
  - Dependencies: stdlib only. This is a bespoke self-delimiting format;
    no off-the-shelf codec speaks it.

ERROR HANDLING:
  - All parse failures return *MalformedRecordError carrying the key
    (when known) and a reason.

IMPLEMENTATION RULES:
  - Values are opaque byte slices. Never decode them here.
  - The parse loop only terminates at a remaining length of zero, so a
    trailing partial record is an error by construction.

USAGE:
  items, err := klv.Parse(raw)
  out = klv.Append(out, klv.Item{Key: "model", Value: []byte("count")})

SELF-HEALING INSTRUCTIONS:
  - If decoding fails on harness input, diff the bytes against the
    grammar above before suspecting this parser; the length field is
    authoritative.

RELATED FILES:
  - internal/config/config.go - folds decoded items into a Config.

MAINTENANCE:
  - The grammar is frozen; changing it breaks every benchmark harness
    that feeds this runner.
*/

package klv

import (
	"bytes"
	"fmt"
	"strconv"
)

// Item is one decoded key/value record. The value is an opaque byte
// slice aliasing the input buffer; callers that retain it past the
// buffer's lifetime must copy.
type Item struct {
	Key   string
	Value []byte
}

// MalformedRecordError describes a wire format violation: bad delimiter
// count, bad length field, truncated value, or missing terminator.
type MalformedRecordError struct {
	Key    string // empty when the failure precedes key extraction
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("malformed KLV record: %s", e.Reason)
	}
	return fmt.Sprintf("malformed KLV record for key '%s': %s", e.Key, e.Reason)
}

// Next parses a single record from the front of raw. It returns the
// decoded item and the exact number of bytes consumed
// (key + ':' + length field + ':' + value + '\n').
func Next(raw []byte) (Item, int, error) {
	pieces := bytes.SplitN(raw, []byte{':'}, 3)
	if len(pieces) < 3 {
		return Item{}, 0, &MalformedRecordError{Reason: "not enough pieces"}
	}
	key := string(pieces[0])
	valueLen, err := strconv.Atoi(string(pieces[1]))
	if err != nil || valueLen < 0 {
		return Item{}, 0, &MalformedRecordError{
			Key:    key,
			Reason: fmt.Sprintf("invalid value length '%s'", pieces[1]),
		}
	}
	rest := pieces[2]
	if len(rest) < valueLen {
		return Item{}, 0, &MalformedRecordError{
			Key:    key,
			Reason: fmt.Sprintf("not enough bytes remaining for length %d", valueLen),
		}
	}
	value := rest[:valueLen]
	rest = rest[valueLen:]
	if len(rest) == 0 || rest[0] != '\n' {
		return Item{}, 0, &MalformedRecordError{
			Key:    key,
			Reason: "did not find \\n after value",
		}
	}
	nread := len(pieces[0]) + 1 + len(pieces[1]) + 1 + len(value) + 1
	return Item{Key: key, Value: value}, nread, nil
}

// Parse decodes the entire buffer into a sequence of items. Leftover
// bytes after the last complete record fail as a malformed record.
func Parse(raw []byte) ([]Item, error) {
	var items []Item
	for len(raw) > 0 {
		it, nread, err := Next(raw)
		if err != nil {
			return nil, err
		}
		raw = raw[nread:]
		items = append(items, it)
	}
	return items, nil
}

// Append encodes a single item onto dst and returns the extended
// buffer. Append and Next round-trip byte for byte.
func Append(dst []byte, it Item) []byte {
	dst = append(dst, it.Key...)
	dst = append(dst, ':')
	dst = strconv.AppendInt(dst, int64(len(it.Value)), 10)
	dst = append(dst, ':')
	dst = append(dst, it.Value...)
	return append(dst, '\n')
}
