package service

import (
	"net/url"
	"strings"

	"hello-doctors/pkg/storage"
)

// staticAssetPrefix marks stored values that live in the deployment's
// public images directory.
const staticAssetPrefix = "images/"

// ImageResolver turns a stored profile-image reference into a displayable
// URL. Three storage conventions coexist: absolute URLs from the legacy
// import, public-folder paths for admin-managed assets and upload-disk
// paths for user submissions. Historical rows are never backfilled, so all
// three must keep resolving indefinitely.
type ImageResolver struct {
	siteBaseURL string
	uploadDisk  *storage.Disk
}

func NewImageResolver(siteBaseURL string, uploadDisk *storage.Disk) *ImageResolver {
	return &ImageResolver{
		siteBaseURL: strings.TrimRight(siteBaseURL, "/"),
		uploadDisk:  uploadDisk,
	}
}

// Resolve applies the tier order: absolute http/https URL as-is, then the
// public images/ prefix against the site base URL, then the upload disk's
// URL builder. Empty input resolves to nil and the caller renders a
// placeholder.
func (r *ImageResolver) Resolve(stored string) *string {
	if stored == "" {
		return nil
	}

	if u, err := url.Parse(stored); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return &stored
	}

	if strings.HasPrefix(stored, staticAssetPrefix) {
		resolved := r.siteBaseURL + "/" + stored
		return &resolved
	}

	resolved := r.uploadDisk.URL(stored)
	return &resolved
}
