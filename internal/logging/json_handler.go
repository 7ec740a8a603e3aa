package logging

import (
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
)

// fileTimeLayout keeps log file timestamps fixed width so they sort as text.
const fileTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// newJSONHandler writes one object per record, as staffroll.log holds:
//
//	{"time":"2026-10-19T08:12:30.412Z","level":"info","msg":"staff roll saved","path":"StaffRoll.bin","elapsed_ms":3}
func newJSONHandler(w io.Writer, lvl slog.Leveler, addSource bool) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   addSource,
		ReplaceAttr: fileRecordAttr,
	})
}

// fileRecordAttr rewrites the built-in keys and renders durations as whole
// milliseconds under a "_ms" suffixed key.
func fileRecordAttr(groups []string, attr slog.Attr) slog.Attr {
	if attr.Value.Kind() == slog.KindDuration {
		ms := attr.Value.Duration().Milliseconds()
		return slog.Int64(strings.TrimSuffix(attr.Key, "_ms")+"_ms", ms)
	}
	if len(groups) > 0 {
		return attr
	}
	switch attr.Key {
	case slog.TimeKey:
		if attr.Value.Kind() == slog.KindTime {
			return slog.String(slog.TimeKey, attr.Value.Time().UTC().Format(fileTimeLayout))
		}
	case slog.LevelKey:
		return slog.String(slog.LevelKey, strings.ToLower(attr.Value.String()))
	case slog.SourceKey:
		if src, ok := attr.Value.Any().(*slog.Source); ok && src != nil {
			return slog.String("caller", filepath.Base(src.File)+":"+strconv.Itoa(src.Line))
		}
	}
	return attr
}

// withSession binds the session identifier to handler so every record it
// emits carries it. Empty identifiers leave handler untouched.
func withSession(handler slog.Handler, sessionID string) slog.Handler {
	if handler == nil {
		return NoopHandler{}
	}
	if sessionID == "" {
		return handler
	}
	return handler.WithAttrs([]slog.Attr{slog.String(FieldSessionID, sessionID)})
}
