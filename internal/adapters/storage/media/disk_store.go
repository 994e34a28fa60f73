// Package media stores uploaded files in a single flat directory and hands
// back the stored filename for persistence in the owning record. Files are
// referenced by name only; there is no transactionality with database writes.
package media

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AllowedExtensions is the fixed set of accepted upload extensions,
// compared case-insensitively.
var AllowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"mp4":  true,
	"mov":  true,
	"avi":  true,
	"webp": true,
}

// Domain errors
var (
	ErrDisallowedExtension = errors.New("file type is not allowed")
	ErrUnsafeFilename      = errors.New("filename resolves outside the upload directory")
)

// storedNameLayout is the timestamp prefix on stored filenames.
const storedNameLayout = "20060102150405"

// AllowedExtension reports whether the filename carries an accepted
// extension. Files without any extension are rejected.
func AllowedExtension(filename string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return false
	}
	return AllowedExtensions[ext]
}

// DiskStore writes uploads to one flat directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the upload directory if needed and returns a store.
// PRE: dir is a writable path
// POST: dir exists
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Dir returns the upload directory path.
func (s *DiskStore) Dir() string {
	return s.dir
}

// Save validates the extension, writes the bytes under a collision-proof
// stored name and returns that name.
// PRE: filename is the client-supplied name; r streams the file bytes
// POST: File exists under the returned name, or no file was written
func (s *DiskStore) Save(filename string, r io.Reader) (string, error) {
	// Callers report the offending filename themselves, so the error
	// carries only the reason.
	if !AllowedExtension(filename) {
		return "", ErrDisallowedExtension
	}

	// Timestamp prefix keeps stored names sortable by upload time; the uuid
	// fragment removes the same-second collision window.
	stored := fmt.Sprintf("%s_%s_%s",
		time.Now().UTC().Format(storedNameLayout),
		uuid.NewString()[:8],
		sanitizeFilename(filename))

	f, err := os.OpenFile(filepath.Join(s.dir, stored), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	return stored, nil
}

// Remove deletes a stored file. Callers treat failure as non-fatal cleanup
// and log it; a missing file is reported like any other removal error.
// PRE: filename was returned by Save (empty filename is a no-op)
// POST: File is absent on nil return
func (s *DiskStore) Remove(filename string) error {
	if filename == "" {
		return nil
	}
	path, err := s.Path(filename)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

// Path resolves a stored filename inside the upload directory, rejecting
// anything that would escape it.
// PRE: filename is a bare name, not a path
// POST: Returned path is under the upload directory
func (s *DiskStore) Path(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return "", ErrUnsafeFilename
	}
	return filepath.Join(s.dir, filename), nil
}

// sanitizeFilename strips any path components and replaces unsafe runes so
// the stored name is a single safe path segment.
func sanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	cleaned := strings.Trim(b.String(), "._")
	if cleaned == "" {
		cleaned = "file"
	}
	return cleaned
}
