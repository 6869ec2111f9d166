package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hello-doctors/pkg/storage"
)

func multipartImageRequest(t *testing.T, field, filename, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("failed to build form file: %v", err)
	}
	fw.Write([]byte(content))
	mw.Close()

	r := httptest.NewRequest(http.MethodPost, "/admin/specialties", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return r
}

func TestSaveStaticImage_PrefixesStoredPath(t *testing.T) {
	dir := t.TempDir()
	disk := storage.NewDisk(dir, "http://example.com/images")

	r := multipartImageRequest(t, "image", "icon.png", "png-bytes")
	stored, err := saveStaticImage(r, "image", disk)
	if err != nil {
		t.Fatalf("saveStaticImage returned error: %v", err)
	}

	if !strings.HasPrefix(stored, "images/") {
		t.Errorf("stored value = %q, want images/ prefix for static-asset resolution", stored)
	}
	onDisk := filepath.Join(dir, strings.TrimPrefix(stored, "images/"))
	if _, err := os.Stat(onDisk); err != nil {
		t.Errorf("stored file missing on public disk: %v", err)
	}

	// Handlers pass the prefixed value back to Remove on rollback.
	if err := disk.Remove(stored); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if _, err := os.Stat(onDisk); !os.IsNotExist(err) {
		t.Error("file should be gone after Remove")
	}
}

func TestSaveStaticImage_MissingFileIsEmpty(t *testing.T) {
	disk := storage.NewDisk(t.TempDir(), "http://example.com/images")

	r := multipartImageRequest(t, "other_field", "icon.png", "x")
	stored, err := saveStaticImage(r, "image", disk)
	if err != nil {
		t.Fatalf("saveStaticImage returned error: %v", err)
	}
	if stored != "" {
		t.Errorf("stored value = %q, want empty for absent field", stored)
	}
}
