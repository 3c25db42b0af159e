package sink

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/jfelberg/streamlog/core"
	"github.com/jfelberg/streamlog/formatter"
)

// DefaultFileName is the registry name a file sink carries unless
// configured otherwise.
const DefaultFileName = "file"

// DefaultFilePath derives the log path from the running executable:
// /path/to/binary logs to /path/to/binary.log. It falls back to
// "streamlog.log" in the working directory when the executable path
// cannot be resolved.
func DefaultFilePath() string {
	exe, err := os.Executable()
	if err != nil {
		return "streamlog.log"
	}
	return exe + ".log"
}

// File appends formatted records to a single log file. A sink whose
// file could not be opened stays registered but drops records until a
// later SetPath succeeds. The file grows without bound; rotation and
// retention are out of scope.
type File struct {
	levelVar
	name            string
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	stats           *Stats

	mu   sync.Mutex
	path string
	file *os.File // nil while in the dropping state
}

// FileConfig holds configuration for the file sink
type FileConfig struct {
	// Name identifies the sink in the registry (default: "file")
	Name string
	// Path is the log file location (default: executable path + ".log")
	Path string
	// Level is the minimum level the sink accepts. The zero value
	// means unset and yields DebugLevel; lower to TraceLevel with
	// SetLevel after construction.
	Level core.Level
	// Formatter to use (default: TextFormatter with call site detail)
	Formatter formatter.Formatter
}

// NewFile creates a new file sink. The returned sink is usable even
// when err is non-nil: it stays in the dropping state until a later
// SetPath succeeds.
func NewFile(cfg FileConfig) (*File, error) {
	if cfg.Name == "" {
		cfg.Name = DefaultFileName
	}
	if cfg.Path == "" {
		cfg.Path = DefaultFilePath()
	}
	if cfg.Level == 0 {
		cfg.Level = core.DebugLevel
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{Detail: true})
	}

	s := &File{
		name:      cfg.Name,
		formatter: cfg.Formatter,
		stats:     NewStats(),
	}
	s.SetLevel(cfg.Level)

	// Cache WriterFormatter for zero-alloc path
	s.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	err := s.SetPath(cfg.Path)
	return s, err
}

// Name identifies the sink in a registry
func (s *File) Name() string {
	return s.name
}

// SetPath closes the current file and appends to path from then on.
// On failure the sink keeps its name and configuration but drops
// records until a later SetPath succeeds.
func (s *File) SetPath(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file != nil {
		// The handle is being abandoned either way
		_ = s.file.Sync()
		_ = s.file.Close()
		s.file = nil
	}
	s.path = path

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "create log directory for %s", path)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrapf(err, "open log file %s", path)
	}
	s.file = file
	return nil
}

// Path returns the path records are currently appended to
func (s *File) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// Write appends a record to the file. In the dropping state the
// record is discarded and counted, and nil is returned: an unopened
// file is a known condition, not a delivery failure.
func (s *File) Write(rec *core.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		s.stats.IncrementDropped()
		return nil
	}

	if s.writerFormatter != nil {
		if err := s.writerFormatter.FormatTo(rec, s.file); err != nil {
			s.stats.IncrementError()
			return err
		}
		s.stats.IncrementWritten()
		return nil
	}

	data, err := s.formatter.Format(rec)
	if err != nil {
		s.stats.IncrementError()
		return err
	}
	if _, err := s.file.Write(data); err != nil {
		s.stats.IncrementError()
		return err
	}
	s.stats.IncrementWritten()
	return nil
}

// Stats returns a snapshot of the current statistics
func (s *File) Stats() Snapshot {
	return s.stats.GetSnapshot()
}

// Close syncs and closes the file. The sink drops records afterwards;
// closing an already closed or never opened sink is a no-op.
func (s *File) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}
	file := s.file
	s.file = nil

	if err := multierr.Append(file.Sync(), file.Close()); err != nil {
		return errors.Wrapf(err, "close log file %s", s.path)
	}
	return nil
}
