// Package document manages one open staff roll file.
//
// A Document owns the ordered command list decoded from disk and is the only
// place that list is mutated. Indices are zero based here; the CLI converts
// from the one based numbers it shows to users. Saving re-encodes the whole
// list and replaces the file atomically under an advisory lock, optionally
// keeping a timestamped backup of the previous contents.
//
// Field editing also lives here: the codec accepts any value that fits its
// fixed widths, so range checks and text size limits are enforced by
// SetField before a command ever reaches the encoder.
package document
