package service

import (
	"testing"

	"hello-doctors/pkg/storage"
)

func newResolverForTest() *ImageResolver {
	disk := storage.NewDisk("/tmp/uploads", "http://example.com/uploads")
	return NewImageResolver("http://example.com/", disk)
}

func TestResolve_EmptyGivesNil(t *testing.T) {
	r := newResolverForTest()
	if got := r.Resolve(""); got != nil {
		t.Errorf("Resolve(\"\") = %v, want nil", *got)
	}
}

func TestResolve_AbsoluteURLPassesThrough(t *testing.T) {
	r := newResolverForTest()
	stored := "https://cdn.example.org/photos/doc.jpg"
	got := r.Resolve(stored)
	if got == nil || *got != stored {
		t.Errorf("Resolve(%q) = %v, want unchanged", stored, got)
	}
}

func TestResolve_PublicImagesPrefix(t *testing.T) {
	r := newResolverForTest()
	got := r.Resolve("images/doctors/doc.jpg")
	want := "http://example.com/images/doctors/doc.jpg"
	if got == nil || *got != want {
		t.Errorf("Resolve = %v, want %q", got, want)
	}
}

func TestResolve_UploadDiskFallback(t *testing.T) {
	r := newResolverForTest()
	got := r.Resolve("1693212000_doc.jpg")
	want := "http://example.com/uploads/1693212000_doc.jpg"
	if got == nil || *got != want {
		t.Errorf("Resolve = %v, want %q", got, want)
	}
}

func TestResolve_SchemelessHostNotTreatedAsURL(t *testing.T) {
	r := newResolverForTest()
	got := r.Resolve("cdn.example.org/doc.jpg")
	want := "http://example.com/uploads/cdn.example.org/doc.jpg"
	if got == nil || *got != want {
		t.Errorf("Resolve = %v, want %q", got, want)
	}
}
