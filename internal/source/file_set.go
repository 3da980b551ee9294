package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet manages a collection of source files and provides span resolution.
// A script run or `lox ast` owns one file; the REPL adds one virtual file
// per line to a single set; `lox check` gives each file its own set, so
// the concurrent per-file goroutines share no FileSet.
type FileSet struct {
	files []File
	index map[string]FileID // path -> id
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0, 1),
		index: make(map[string]FileID),
	}
}

// Add stores a file from raw bytes and returns a new FileID.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	hash := sha256.Sum256(content)
	lineIdx := buildLineIndex(content)

	lenFiles, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	id := FileID(lenFiles)
	fs.files = append(fs.files, File{
		ID:      id,
		Path:    path,
		Content: content,
		LineIdx: lineIdx,
		Hash:    hash,
		Flags:   flags,
	})
	fs.index[path] = id
	return id
}

// Load reads a file from disk and adds it to the set.
func (fs *FileSet) Load(path string) (FileID, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path comes from the CLI argument
	if err != nil {
		return 0, err
	}
	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)
	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fs.Add(normalizePath(path), content, flags), nil
}

// AddVirtual adds an in-memory file (REPL line, test fixture, stdin).
func (fs *FileSet) AddVirtual(name string, content string) FileID {
	return fs.Add(name, []byte(content), FileVirtual)
}

// Get returns the file metadata for the given ID.
func (fs *FileSet) Get(id FileID) *File {
	return &fs.files[id]
}

// GetByPath returns the most recently added file with the given path, if any.
func (fs *FileSet) GetByPath(path string) (*File, bool) {
	id, ok := fs.index[path]
	if !ok {
		return nil, false
	}
	return &fs.files[id], true
}

// Resolve converts a span into 1-based line/column positions.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	f := &fs.files[span.File]
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// Line returns the 1-based source line containing the start of the span.
func (fs *FileSet) Line(span Span) uint32 {
	start, _ := fs.Resolve(span)
	return start.Line
}
