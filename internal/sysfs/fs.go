// Package sysfs reads kernel attribute files under a class tree
// such as /sys/class. Attributes are tiny pseudo-files owned by the
// kernel; reads never block on disk but can fail in driver-specific
// ways, so every read here is bounded and failures degrade to empty
// values instead of errors.
package sysfs

import (
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/rileyhilliard/kmon/internal/logger"
)

// FS is the attribute access surface consumed by device classification
// and metric extraction. Implementations must be safe for repeated
// polling of the same paths.
type FS interface {
	// Exists reports whether path exists. Used to probe marker
	// attributes when classifying a device.
	Exists(path string) bool

	// ReadLine returns the first line of the file at path with
	// surrounding whitespace trimmed. It returns "" on any failure:
	// missing file, permission denied, or a read error from the
	// driver. Callers treat "" as "attribute unavailable".
	ReadLine(path string) string

	// ListDir returns the entry names of the directory at path.
	ListDir(path string) ([]string, error)
}

// osFS reads attributes from the real filesystem.
type osFS struct {
	log logger.Logger
}

// NewOS returns an FS backed by the host filesystem.
func NewOS() FS {
	return NewOSWithLogger(logger.NewEnvLogger("[sysfs]"))
}

// NewOSWithLogger returns an FS backed by the host filesystem that
// reports read failures through l.
func NewOSWithLogger(l logger.Logger) FS {
	return &osFS{log: l}
}

func (f *osFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// readLineSize bounds a single attribute read. Sysfs values are one
// short line; anything past the first newline is discarded.
const readLineSize = 128

func (f *osFS) ReadLine(path string) string {
	file, err := os.Open(path)
	if err != nil {
		f.log.Debug("open %s: %v", path, err)
		return ""
	}
	defer func() { _ = file.Close() }()

	// Some sysfs drivers (hwmon in particular) return EAGAIN from
	// read(2), which makes Go's os.ReadFile poll forever. Issue a
	// single bounded read directly and bail on any error.
	buf := make([]byte, readLineSize)
	n, err := unix.Read(int(file.Fd()), buf)
	if err != nil || n < 0 {
		f.log.Debug("read %s: %v", path, err)
		return ""
	}

	return FirstLine(string(buf[:n]))
}

func (f *osFS) ListDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		f.log.Debug("list %s: %v", path, err)
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// FirstLine trims raw to its first line with surrounding whitespace
// removed.
func FirstLine(raw string) string {
	if i := strings.IndexByte(raw, '\n'); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimSpace(raw)
}
