package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hello-doctors/pkg/storage"
)

const maxUploadSize = 10 << 20 // 10 MiB

// saveUploadedFile stores the named multipart file on the disk and returns
// the stored path. Returns "" when the field is absent.
func saveUploadedFile(r *http.Request, field string, disk *storage.Disk) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	return disk.Save(file, header.Filename)
}

// saveStaticImage stores an admin-managed image on the public images disk
// and returns the value to persist on the entity. The images/ prefix is
// what the URL resolver keys on for static assets.
func saveStaticImage(r *http.Request, field string, disk *storage.Disk) (string, error) {
	stored, err := saveUploadedFile(r, field, disk)
	if err != nil || stored == "" {
		return "", err
	}
	return "images/" + stored, nil
}

// Form field parsing. Empty values yield zero values or nil pointers so
// optional fields stay optional.

func formUint(r *http.Request, field string) uint {
	v, _ := strconv.ParseUint(r.FormValue(field), 10, 32)
	return uint(v)
}

func formUintPtr(r *http.Request, field string) *uint {
	raw := r.FormValue(field)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	u := uint(v)
	return &u
}

func formIntPtr(r *http.Request, field string) *int {
	raw := r.FormValue(field)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func formBool(r *http.Request, field string) bool {
	v, _ := strconv.ParseBool(r.FormValue(field))
	return v
}

// formJSON unmarshals a JSON-encoded form field into dst. Absent fields
// are skipped.
func formJSON(r *http.Request, field string, dst interface{}) error {
	raw := r.FormValue(field)
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), dst)
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func queryUint(r *http.Request, key string) uint {
	v, _ := strconv.ParseUint(r.URL.Query().Get(key), 10, 32)
	return uint(v)
}

func queryBool(r *http.Request, key string) bool {
	v, _ := strconv.ParseBool(r.URL.Query().Get(key))
	return v
}
