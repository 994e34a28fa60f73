package orchestrators

import (
	"io"
	"strings"
	"time"
)

var fixedTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return fixedTime }

// mockMedia implements MediaStore in memory.
type mockMedia struct {
	saved   []string
	removed []string
	failFor map[string]error
}

// Save implements MediaStore.
// POST: the returned name carries the timestamp prefix used on disk
func (m *mockMedia) Save(filename string, _ io.Reader) (string, error) {
	if err, ok := m.failFor[filename]; ok {
		return "", err
	}
	stored := "20260301120000_abcd1234_" + filename
	m.saved = append(m.saved, stored)
	return stored, nil
}

// Remove implements MediaStore.
func (m *mockMedia) Remove(filename string) error {
	m.removed = append(m.removed, filename)
	return nil
}

func upload(name, content string) *FileUpload {
	return &FileUpload{Filename: name, Reader: strings.NewReader(content)}
}
