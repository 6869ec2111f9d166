package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Disk is a managed file area with a URL prefix its contents are served
// under. The site runs two: the public images directory for admin-managed
// assets and the upload disk for user-submitted files.
type Disk struct {
	root    string
	baseURL string
}

func NewDisk(root, baseURL string) *Disk {
	return &Disk{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// SanitizeFilename strips every character outside [A-Za-z0-9._-] so
// user-supplied names cannot escape the disk or break URLs.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteRune(c)
		case c == '.' || c == '_' || c == '-':
			b.WriteRune(c)
		}
	}
	return b.String()
}

// Save writes the content under a timestamp-prefixed, sanitized filename
// and returns the stored path relative to the disk root.
func (d *Disk) Save(content io.Reader, originalName string) (string, error) {
	name := SanitizeFilename(originalName)
	if name == "" {
		name = "file"
	}
	stored := fmt.Sprintf("%d_%s", time.Now().Unix(), name)

	if err := os.MkdirAll(d.root, 0o755); err != nil {
		return "", fmt.Errorf("failed to create storage dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(d.root, stored))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return stored, nil
}

// Remove deletes a stored file. Used to clean up uploads when the
// surrounding transaction fails.
func (d *Disk) Remove(stored string) error {
	if stored == "" {
		return nil
	}
	err := os.Remove(filepath.Join(d.root, filepath.Base(stored)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// URL returns the public URL for a stored path.
func (d *Disk) URL(stored string) string {
	return d.baseURL + "/" + path.Clean(strings.TrimLeft(stored, "/"))
}
