package document

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"staffroll/internal/fileutil"
	"staffroll/internal/logging"
	"staffroll/internal/staffroll"
)

const (
	defaultLockTimeout = 5 * time.Second
	lockRetryDelay     = 50 * time.Millisecond
)

var (
	ErrIndexOutOfRange = errors.New("document: index out of range")
	ErrNoPath          = errors.New("document: no file path set")
	ErrLocked          = errors.New("document: file is locked by another process")
)

// Options configures how a document is saved and logged.
type Options struct {
	// BackupDir receives a copy of the previous file on save. Empty disables
	// backups.
	BackupDir   string
	LockTimeout time.Duration
	Logger      *slog.Logger
}

// Document is one staff roll file and its command list.
type Document struct {
	Path     string
	commands []staffroll.Command
	modified bool

	backupDir   string
	lockTimeout time.Duration
	logger      *slog.Logger
}

// New returns an empty document that will be saved to path.
func New(path string, opts Options) *Document {
	d := &Document{Path: path}
	d.apply(opts)
	return d
}

// Open reads and decodes the file at path. On failure no document is
// returned.
func Open(path string, opts Options) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read staff roll: %w", err)
	}
	cmds, err := staffroll.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	d := &Document{Path: path, commands: cmds}
	d.apply(opts)
	d.logger.Debug("staff roll opened",
		logging.String("path", path),
		logging.Int("bytes", len(data)),
		logging.Int("commands", len(cmds)),
	)
	return d, nil
}

func (d *Document) apply(opts Options) {
	d.backupDir = strings.TrimSpace(opts.BackupDir)
	d.lockTimeout = opts.LockTimeout
	if d.lockTimeout <= 0 {
		d.lockTimeout = defaultLockTimeout
	}
	d.logger = opts.Logger
	if d.logger == nil {
		d.logger = logging.NewNop()
	}
	d.logger = d.logger.With(logging.String(logging.FieldComponent, "document"))
}

// Len returns the number of commands.
func (d *Document) Len() int {
	return len(d.commands)
}

// Commands returns a copy of the command list.
func (d *Document) Commands() []staffroll.Command {
	out := make([]staffroll.Command, len(d.commands))
	copy(out, d.commands)
	return out
}

// Modified reports whether the list changed since it was opened or saved.
func (d *Document) Modified() bool {
	return d.modified
}

// At returns the command at index i.
func (d *Document) At(i int) (staffroll.Command, error) {
	if err := d.checkIndex(i, len(d.commands)); err != nil {
		return nil, err
	}
	return d.commands[i], nil
}

// Insert places cmd before index i. i may equal Len to append.
func (d *Document) Insert(i int, cmd staffroll.Command) error {
	if err := checkCommand(cmd); err != nil {
		return err
	}
	if err := d.checkIndex(i, len(d.commands)+1); err != nil {
		return err
	}
	d.commands = append(d.commands, nil)
	copy(d.commands[i+1:], d.commands[i:])
	d.commands[i] = cmd
	d.modified = true
	d.logger.Debug("command inserted", logging.Int("index", i), logging.String("type", cmd.Opcode().String()))
	return nil
}

// Append adds cmd to the end of the list.
func (d *Document) Append(cmd staffroll.Command) error {
	return d.Insert(len(d.commands), cmd)
}

// Remove deletes and returns the command at index i.
func (d *Document) Remove(i int) (staffroll.Command, error) {
	if err := d.checkIndex(i, len(d.commands)); err != nil {
		return nil, err
	}
	removed := d.commands[i]
	d.commands = append(d.commands[:i], d.commands[i+1:]...)
	d.modified = true
	d.logger.Debug("command removed", logging.Int("index", i), logging.String("type", removed.Opcode().String()))
	return removed, nil
}

// Move relocates the command at index from so that it ends up at index to.
func (d *Document) Move(from, to int) error {
	if err := d.checkIndex(from, len(d.commands)); err != nil {
		return err
	}
	if err := d.checkIndex(to, len(d.commands)); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	cmd := d.commands[from]
	if from < to {
		copy(d.commands[from:to], d.commands[from+1:to+1])
	} else {
		copy(d.commands[to+1:from+1], d.commands[to:from])
	}
	d.commands[to] = cmd
	d.modified = true
	d.logger.Debug("command moved", logging.Int("from", from), logging.Int("to", to))
	return nil
}

// Replace swaps the command at index i for cmd.
func (d *Document) Replace(i int, cmd staffroll.Command) error {
	if err := checkCommand(cmd); err != nil {
		return err
	}
	if err := d.checkIndex(i, len(d.commands)); err != nil {
		return err
	}
	d.commands[i] = cmd
	d.modified = true
	return nil
}

// Encode returns the file bytes for the current list.
func (d *Document) Encode() ([]byte, error) {
	return staffroll.Encode(d.commands)
}

// Save writes the document to its path.
func (d *Document) Save(ctx context.Context) error {
	if strings.TrimSpace(d.Path) == "" {
		return ErrNoPath
	}
	return d.SaveAs(ctx, d.Path)
}

// SaveAs writes the document to path and makes path the document's path.
// The list is encoded before anything on disk is touched, so an encode
// failure leaves the existing file alone.
func (d *Document) SaveAs(ctx context.Context, path string) error {
	start := time.Now()
	data, err := d.Encode()
	if err != nil {
		return fmt.Errorf("encode staff roll: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}

	lock := flock.New(path + ".lock")
	lockCtx, cancel := context.WithTimeout(ctx, d.lockTimeout)
	defer cancel()
	ok, err := lock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrLocked, path)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			d.logger.Warn("failed to release lock", logging.String("path", path), logging.Error(err))
		}
	}()

	if d.backupDir != "" {
		backup, err := d.backup(path)
		if err != nil {
			return err
		}
		if backup != "" {
			d.logger.Info("previous staff roll backed up", logging.String("backup", backup))
		}
	}

	if err := fileutil.WriteAtomic(path, data, 0o644); err != nil {
		return err
	}
	d.Path = path
	d.modified = false
	d.logger.Info("staff roll saved",
		logging.String("path", path),
		logging.Int("bytes", len(data)),
		logging.Int("commands", len(d.commands)),
		logging.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// backup copies the current file at path into the backup directory. It
// returns an empty name when there is nothing to back up.
func (d *Document) backup(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("stat file for backup: %w", err)
	}
	if err := os.MkdirAll(d.backupDir, 0o755); err != nil {
		return "", fmt.Errorf("create backup directory %q: %w", d.backupDir, err)
	}
	stamp := time.Now().UTC().Format("20060102T150405.000Z")
	target := filepath.Join(d.backupDir, fmt.Sprintf("%s.%s.bak", filepath.Base(path), stamp))
	if err := fileutil.CopyVerified(path, target); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return target, nil
}

func (d *Document) checkIndex(i, limit int) error {
	if i < 0 || i >= limit {
		return fmt.Errorf("%w: %d (have %d commands)", ErrIndexOutOfRange, i, len(d.commands))
	}
	return nil
}

func checkCommand(cmd staffroll.Command) error {
	if cmd == nil {
		return errors.New("document: nil command")
	}
	if cmd.Opcode() == staffroll.OpStop {
		return staffroll.ErrStopInList
	}
	return nil
}
