package staffroll

import "fmt"

const (
	// RecordOverhead is the length byte plus the opcode byte.
	RecordOverhead = 2
	// MaxPayloadLen is the largest payload a one byte length can describe.
	MaxPayloadLen = 0xFF - RecordOverhead
)

// Record is one framed unit of the stream.
type Record struct {
	// Offset is the position of the record's length byte in the buffer.
	Offset  int
	Opcode  Opcode
	Payload []byte
}

// Len returns the record's size on the wire, length byte included.
func (r Record) Len() int {
	return RecordOverhead + len(r.Payload)
}

// ReadRecord reads the record whose length byte sits at buf[pos]. It returns
// the record and the position of the following record. The payload aliases
// buf.
func ReadRecord(buf []byte, pos int) (Record, int, error) {
	if pos < 0 || pos >= len(buf) {
		return Record{}, pos, fmt.Errorf("%w: no record at offset %d (buffer is %d bytes)", ErrMalformedStream, pos, len(buf))
	}
	size := int(buf[pos])
	if size < RecordOverhead {
		return Record{}, pos, fmt.Errorf("%w: record length %d at offset %d is below %d", ErrMalformedStream, size, pos, RecordOverhead)
	}
	if remaining := len(buf) - pos - 1; remaining < size-1 {
		return Record{}, pos, fmt.Errorf("%w: record at offset %d needs %d bytes, %d remain", ErrMalformedStream, pos, size-1, remaining)
	}
	rec := Record{
		Offset:  pos,
		Opcode:  Opcode(buf[pos+1]),
		Payload: buf[pos+RecordOverhead : pos+size],
	}
	return rec, pos + size, nil
}

// AppendRecord frames op and payload and appends the record to dst.
func AppendRecord(dst []byte, op Opcode, payload []byte) ([]byte, error) {
	if len(payload) > MaxPayloadLen {
		return dst, fmt.Errorf("%w: %s payload is %d bytes (max %d)", ErrRecordTooLarge, op, len(payload), MaxPayloadLen)
	}
	dst = append(dst, byte(len(payload)+RecordOverhead), byte(op))
	return append(dst, payload...), nil
}

// Records walks buf and returns every record up to and including the first
// stop record. Opcodes are not checked against the catalog.
func Records(buf []byte) ([]Record, error) {
	var out []Record
	for pos := 0; ; {
		rec, next, err := ReadRecord(buf, pos)
		if err != nil {
			return out, err
		}
		out = append(out, rec)
		if rec.Opcode == OpStop {
			return out, nil
		}
		pos = next
	}
}
