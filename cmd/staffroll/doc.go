// Package main hosts the staffroll CLI entrypoint and command graph.
//
// Each subcommand opens one StaffRoll.bin file, applies a single edit or
// query through internal/document, and saves the result atomically. The
// package resolves configuration once per invocation and builds the logger
// that the document layer writes to.
//
// Keep format logic out of this package; it belongs in internal/staffroll.
package main
