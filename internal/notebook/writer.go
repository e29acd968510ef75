package notebook

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	"github.com/alnah/go-nbgen/internal/fileutil"
)

// Extension is the notebook file extension.
const Extension = ".ipynb"

// ErrWriteNotebook reports a failure to persist a notebook.
var ErrWriteNotebook = errors.New("failed to write notebook")

// WriteResult describes a completed write.
type WriteResult struct {
	Path      string
	Digest    string // BLAKE3-256, hex
	Unchanged bool   // the file already held identical bytes and was left alone
}

// Writer persists notebooks under a directory, creating it as needed.
type Writer struct {
	Dir string
}

// NewWriter returns a Writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir}
}

// Path returns the file path used for a notebook called name.
func (w *Writer) Path(name string) string {
	return filepath.Join(w.Dir, name+Extension)
}

// Write validates and writes nb as <Dir>/<name>.ipynb. A file whose digest
// already matches is not rewritten, so its modification time is preserved.
func (w *Writer) Write(name string, nb *Notebook) (*WriteResult, error) {
	data, err := Marshal(nb)
	if err != nil {
		return nil, err
	}
	if err := Validate(data); err != nil {
		return nil, err
	}
	return w.WriteBytes(name, data)
}

// WriteBytes writes already-encoded notebook JSON.
func (w *Writer) WriteBytes(name string, data []byte) (*WriteResult, error) {
	path := w.Path(name)
	digest := Digest(data)

	if existing, err := os.ReadFile(path); err == nil && Digest(existing) == digest { // #nosec G304 -- output path is user-provided
		return &WriteResult{Path: path, Digest: digest, Unchanged: true}, nil
	}

	if err := fileutil.WriteFileAtomic(path, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteNotebook, err)
	}
	return &WriteResult{Path: path, Digest: digest}, nil
}

// Digest returns the hex BLAKE3-256 digest of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
