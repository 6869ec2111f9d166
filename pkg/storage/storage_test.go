package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"my photo.jpg", "myphoto.jpg"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\evil.exe", "......evil.exe"},
		{"doc's scan (1).png", "docsscan1.png"},
		{"profile_image-v2.jpeg", "profile_image-v2.jpeg"},
	}

	for _, tc := range cases {
		if got := SanitizeFilename(tc.in); got != tc.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	disk := NewDisk(dir, "http://example.com/uploads")

	stored, err := disk.Save(strings.NewReader("content"), "photo.jpg")
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if !strings.HasSuffix(stored, "_photo.jpg") {
		t.Errorf("stored name = %q, want timestamp prefix and original name", stored)
	}

	data, err := os.ReadFile(filepath.Join(dir, stored))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "content" {
		t.Errorf("stored content = %q", data)
	}

	if err := disk.Remove(stored); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, stored)); !os.IsNotExist(err) {
		t.Error("file should be gone after Remove")
	}
}

func TestRemove_MissingFileIsNoError(t *testing.T) {
	disk := NewDisk(t.TempDir(), "http://example.com/uploads")
	if err := disk.Remove("never_existed.jpg"); err != nil {
		t.Errorf("Remove of missing file returned error: %v", err)
	}
}

func TestRemove_EmptyIsNoop(t *testing.T) {
	disk := NewDisk(t.TempDir(), "http://example.com/uploads")
	if err := disk.Remove(""); err != nil {
		t.Errorf("Remove(\"\") returned error: %v", err)
	}
}

func TestURL(t *testing.T) {
	disk := NewDisk("/var/uploads", "http://example.com/uploads/")
	if got := disk.URL("169_photo.jpg"); got != "http://example.com/uploads/169_photo.jpg" {
		t.Errorf("URL = %q", got)
	}
}

func TestSave_EmptyNameFallsBack(t *testing.T) {
	dir := t.TempDir()
	disk := NewDisk(dir, "http://example.com/uploads")

	stored, err := disk.Save(strings.NewReader("x"), "???")
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if !strings.HasSuffix(stored, "_file") {
		t.Errorf("stored name = %q, want fallback name", stored)
	}
}
