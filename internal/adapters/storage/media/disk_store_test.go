package media

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *DiskStore {
	t.Helper()
	s, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStore failed: %v", err)
	}
	return s
}

// TestAllowedExtension_AcceptsAllowlistAnyCase tests every allowed extension
// in lower, upper and mixed case.
func TestAllowedExtension_AcceptsAllowlistAnyCase(t *testing.T) {
	for ext := range AllowedExtensions {
		mixed := strings.ToUpper(ext[:1]) + ext[1:]
		for _, name := range []string{
			"photo." + ext,
			"photo." + strings.ToUpper(ext),
			"photo." + mixed,
		} {
			if !AllowedExtension(name) {
				t.Errorf("AllowedExtension(%q) = false, want true", name)
			}
		}
	}
}

// TestAllowedExtension_RejectsOthers tests disallowed and missing extensions.
func TestAllowedExtension_RejectsOthers(t *testing.T) {
	for _, name := range []string{"run.exe", "doc.pdf", "script.sh", "noext", "", "archive.tar.gz"} {
		if AllowedExtension(name) {
			t.Errorf("AllowedExtension(%q) = true, want false", name)
		}
	}
}

// TestSave_StoresFileWithPrefixedName tests the stored-name scheme and that
// the bytes land on disk.
func TestSave_StoresFileWithPrefixedName(t *testing.T) {
	s := newTestStore(t)
	stored, err := s.Save("team photo.jpg", strings.NewReader("jpegbytes"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	pattern := regexp.MustCompile(`^\d{14}_[0-9a-f]{8}_team_photo\.jpg$`)
	if !pattern.MatchString(stored) {
		t.Errorf("stored name %q does not match <timestamp>_<uuid8>_<name>", stored)
	}

	data, err := os.ReadFile(filepath.Join(s.Dir(), stored))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "jpegbytes" {
		t.Errorf("stored bytes = %q", data)
	}
}

// TestSave_RejectsDisallowedExtension tests that nothing is written for a
// rejected file.
func TestSave_RejectsDisallowedExtension(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Save("malware.exe", strings.NewReader("x"))
	if !errors.Is(err, ErrDisallowedExtension) {
		t.Fatalf("expected ErrDisallowedExtension, got %v", err)
	}
	entries, _ := os.ReadDir(s.Dir())
	if len(entries) != 0 {
		t.Errorf("upload dir should be empty, has %d entries", len(entries))
	}
}

// TestSave_SanitizesTraversal tests that path components in the client name
// never escape the upload directory.
func TestSave_SanitizesTraversal(t *testing.T) {
	s := newTestStore(t)
	stored, err := s.Save("../../escape.png", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if strings.Contains(stored, "/") || strings.Contains(stored, "..") {
		t.Errorf("stored name %q contains path components", stored)
	}
	if _, err := os.Stat(filepath.Join(s.Dir(), stored)); err != nil {
		t.Errorf("file not stored inside upload dir: %v", err)
	}
}

// TestSave_UniqueNamesForSameInput tests that two saves of the same client
// filename never collide.
func TestSave_UniqueNamesForSameInput(t *testing.T) {
	s := newTestStore(t)
	a, err := s.Save("pic.png", strings.NewReader("one"))
	if err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	b, err := s.Save("pic.png", strings.NewReader("two"))
	if err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	if a == b {
		t.Errorf("stored names collide: %q", a)
	}
}

// TestRemove tests removal of a stored file and the no-op empty case.
func TestRemove(t *testing.T) {
	s := newTestStore(t)
	stored, err := s.Save("pic.png", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Remove(stored); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := s.Remove(stored); err == nil {
		t.Error("expected error removing a missing file")
	}
	if err := s.Remove(""); err != nil {
		t.Errorf("empty filename should be a no-op, got %v", err)
	}
}

// TestPath_RejectsTraversal tests the serving-side path guard.
func TestPath_RejectsTraversal(t *testing.T) {
	s := newTestStore(t)
	for _, name := range []string{"../secret", "a/b.png", "..", ".hidden", ""} {
		if _, err := s.Path(name); !errors.Is(err, ErrUnsafeFilename) {
			t.Errorf("Path(%q): expected ErrUnsafeFilename, got %v", name, err)
		}
	}
	if _, err := s.Path("20250301120000_a1b2c3d4_pic.png"); err != nil {
		t.Errorf("Path on safe name failed: %v", err)
	}
}
