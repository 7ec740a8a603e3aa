package staffroll

import "fmt"

// terminator is the encoded stop record.
var terminator = []byte{RecordOverhead, byte(OpStop)}

// Decode parses a whole file into its command list. The stop record ends the
// stream and is not included in the result; a buffer without one fails with
// ErrMalformedStream. Bytes after the stop record are ignored.
func Decode(buf []byte) ([]Command, error) {
	cmds := make([]Command, 0, len(buf)/4)
	for pos := 0; ; {
		rec, next, err := ReadRecord(buf, pos)
		if err != nil {
			return nil, err
		}
		if _, err := Lookup(rec.Opcode); err != nil {
			return nil, fmt.Errorf("record at offset %d: %w", rec.Offset, err)
		}
		if rec.Opcode == OpStop {
			return cmds, nil
		}
		cmd, err := decodePayload(rec.Opcode, rec.Payload)
		if err != nil {
			return nil, fmt.Errorf("record at offset %d: %w", rec.Offset, err)
		}
		cmds = append(cmds, cmd)
		pos = next
	}
}

// Encode serializes cmds in order and appends the stop record.
//
// It fails only for a nil command, an explicit Stop in cmds, or a set-text
// payload over MaxPayloadLen. The editor never reaches these: Document's
// Insert and Replace reject nil and Stop, and commands built with
// document.SetField or script Build never carry text that overflows a record.
func Encode(cmds []Command) ([]byte, error) {
	out := make([]byte, 0, len(cmds)*4+len(terminator))
	var payload []byte
	for i, cmd := range cmds {
		if cmd == nil {
			return nil, fmt.Errorf("staffroll: command %d is nil", i)
		}
		op := cmd.Opcode()
		if op == OpStop {
			return nil, fmt.Errorf("command %d: %w", i, ErrStopInList)
		}
		payload = appendPayload(payload[:0], cmd)
		var err error
		out, err = AppendRecord(out, op, payload)
		if err != nil {
			return nil, fmt.Errorf("command %d: %w", i, err)
		}
	}
	return append(out, terminator...), nil
}

// EncodeCommand returns the payload bytes of a single command, unframed.
func EncodeCommand(cmd Command) []byte {
	return appendPayload(nil, cmd)
}
