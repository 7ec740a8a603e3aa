package staffroll

import "errors"

var (
	// ErrMalformedStream covers truncated buffers, undersized length bytes,
	// short payloads and a missing stop record.
	ErrMalformedStream = errors.New("staffroll: malformed stream")
	// ErrInvalidOpcode is returned for opcode bytes outside the catalog.
	ErrInvalidOpcode = errors.New("staffroll: invalid opcode")
	// ErrRecordTooLarge is returned when a payload does not fit the one byte
	// length field.
	ErrRecordTooLarge = errors.New("staffroll: record too large")
	// ErrStopInList is returned when a stop command is handed to Encode.
	ErrStopInList = errors.New("staffroll: stop command in list")
)
