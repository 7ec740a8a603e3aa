// Package logging assembles the slog loggers used by the staffroll CLI.
//
// It owns the console and JSON handlers, level parsing, output routing to
// stderr and the log file, and the session handler that stamps every record
// with the invocation's session ID. A no-op logger is provided for tests and
// for library callers that do not care about logs.
package logging
