// Package filer stores generated source artifacts. A store accepts each
// address at most once per build.
package filer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/moby/sys/atomicwriter"
)

// DefaultFileName is the name of the file written for each artifact by [Dir].
const DefaultFileName = "hellogen_gen.go"

// ErrExists is the cause of a [WriteError] when the address has already been
// created.
var ErrExists = errors.New("artifact already exists")

// WriteError indicates that an artifact could not be created or written.
type WriteError struct {
	Name string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error { return e.Err }

// Filer creates artifacts addressed by qualified names, such as
// "generated.GeneratedClass". Errors returned by Create and by the returned
// writer are *WriteError.
type Filer interface {
	Create(name string) (io.WriteCloser, error)
}

// splitName splits a qualified name into its package and type parts.
//
//	"generated.GeneratedClass" => "generated", "GeneratedClass"
//	"a.b.C"                   => "a.b", "C"
func splitName(name string) (string, string, error) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return "", "", fmt.Errorf("invalid qualified name %q", name)
	}
	return name[:i], name[i+1:], nil
}

// Dir stores artifacts under a generated-sources root directory. An artifact
// named "pkg.Type" is written to "<Root>/pkg/<FileName>". Dots in a
// multi-segment package part become path separators.
//
// A Dir represents one build: it refuses to create the same name twice. The
// file is replaced only when the writer is closed after a successful write, so
// a failed write leaves the earlier artifact in place.
type Dir struct {
	Root     string
	FileName string

	// NoClobber refuses to replace a file left by an earlier build.
	NoClobber bool

	mu      sync.Mutex
	created map[string]struct{}
}

// NewDir creates a new [Dir] rooted at root.
func NewDir(root string) *Dir {
	return &Dir{Root: root, FileName: DefaultFileName}
}

// Path returns the file path for the qualified name.
func (d *Dir) Path(name string) (string, error) {
	pkg, _, err := splitName(name)
	if err != nil {
		return "", err
	}

	fileName := d.FileName
	if fileName == "" {
		fileName = DefaultFileName
	}

	segs := strings.Split(pkg, ".")
	return filepath.Join(d.Root, filepath.Join(segs...), fileName), nil
}

// Create implements [Filer].
func (d *Dir) Create(name string) (io.WriteCloser, error) {
	path, err := d.Path(name)
	if err != nil {
		return nil, &WriteError{name, err}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.created == nil {
		d.created = make(map[string]struct{})
	}
	if _, ok := d.created[name]; ok {
		return nil, &WriteError{name, ErrExists}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, &WriteError{name, err}
	}

	if d.NoClobber {
		if _, err := os.Lstat(path); err == nil {
			return nil, &WriteError{name, ErrExists}
		}
	}
	w, err := atomicwriter.New(path, 0o644)
	if err != nil {
		return nil, &WriteError{name, err}
	}

	d.created[name] = struct{}{}
	return &fileWriter{name, w}, nil
}

type fileWriter struct {
	name string
	w    io.WriteCloser
}

func (w *fileWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	if err != nil {
		return n, &WriteError{w.name, err}
	}
	return n, nil
}

func (w *fileWriter) Close() error {
	if err := w.w.Close(); err != nil {
		return &WriteError{w.name, err}
	}
	return nil
}

// Mem stores artifacts in memory. Like [Dir], it refuses to create the same
// name twice. The zero value is ready to use.
type Mem struct {
	mu    sync.Mutex
	files map[string]*bytes.Buffer
}

// Create implements [Filer].
func (m *Mem) Create(name string) (io.WriteCloser, error) {
	if _, _, err := splitName(name); err != nil {
		return nil, &WriteError{name, err}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.files == nil {
		m.files = make(map[string]*bytes.Buffer)
	}
	if _, ok := m.files[name]; ok {
		return nil, &WriteError{name, ErrExists}
	}

	var buf bytes.Buffer
	m.files[name] = &buf
	return nopCloser{&buf}, nil
}

// Get returns the content written for the name.
func (m *Mem) Get(name string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	buf, ok := m.files[name]
	if !ok {
		return nil, false
	}
	return bytes.Clone(buf.Bytes()), true
}

// Len returns the number of created artifacts.
func (m *Mem) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.files)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
