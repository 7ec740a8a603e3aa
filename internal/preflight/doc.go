// Package preflight checks that the directories staffroll writes to are
// usable before a save depends on them.
//
// `staffroll config validate` runs RunAll and reports each Result. Checks
// for features that are switched off (backups) are skipped.
package preflight
