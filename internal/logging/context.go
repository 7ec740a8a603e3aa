package logging

const (
	// FieldComponent is the structured logging key for component names.
	FieldComponent = "component"
	// FieldPath is the structured logging key for the staff roll file being edited.
	FieldPath = "path"
	// FieldCommand is the structured logging key for the CLI subcommand.
	FieldCommand = "command"
	// FieldIndex is the structured logging key for a 0-based command list index.
	FieldIndex = "index"
	// FieldCommandType is the structured logging key for a staff roll command key.
	FieldCommandType = "command_type"
)

// FieldSessionID is the structured logging key for the per-invocation session
// identifier.
const FieldSessionID = "session_id"
