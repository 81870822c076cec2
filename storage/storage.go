package storage

import (
	"mime/multipart"
	"os"
	"regexp"
)

// Client abstracts image storage for dependency injection and testing.
type Client interface {
	UploadProductImage(file multipart.File, filename, contentType string) (string, error)
	Delete(imageURL string) error
}

// NewFromEnv picks the remote forwarder when IMAGE_HOST_URL is configured and
// falls back to local disk otherwise.
func NewFromEnv() Client {
	if base := os.Getenv("IMAGE_HOST_URL"); base != "" {
		return NewRemoteClient(base)
	}
	return NewLocalClient(os.Getenv("UPLOAD_DIR"))
}

var filenameRe = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// sanitizeFilename removes special characters from filenames and limits length.
func sanitizeFilename(filename string) string {
	sanitized := filenameRe.ReplaceAllString(filename, "_")

	if len(sanitized) > 100 {
		sanitized = sanitized[:100]
	}

	if sanitized == "" || sanitized == "." || sanitized == ".." {
		sanitized = "file"
	}

	return sanitized
}
