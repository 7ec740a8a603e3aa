// Package staffroll owns the StaffRoll.bin wire format.
//
// A file is a back-to-back run of records with no header. Each record is a
// length byte that counts itself, an opcode byte, and a command specific
// payload. The stream ends at the first record carrying OpStop.
//
// Ownership boundary:
//   - the command catalog (opcodes, names, field schemas)
//   - per-command payload codecs
//   - record framing and whole-stream Decode/Encode
//
// The package is pure data-in/data-out. It keeps no references into the
// slices it is handed, so callers may mutate a decoded list freely and encode
// it again later.
package staffroll
