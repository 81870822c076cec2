package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// PublicPathPrefix is the URL prefix the router serves uploaded files under.
const PublicPathPrefix = "/uploads/"

// LocalClient stores uploads on the local filesystem and serves them through
// the /uploads/ static route.
type LocalClient struct {
	dir string
}

func NewLocalClient(dir string) *LocalClient {
	if dir == "" {
		dir = "uploads"
	}
	return &LocalClient{dir: dir}
}

// Dir returns the directory the client writes into, for the static route.
func (c *LocalClient) Dir() string {
	return c.dir
}

func (c *LocalClient) UploadProductImage(file multipart.File, filename, contentType string) (string, error) {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload directory: %w", err)
	}

	name := uuid.New().String() + "_" + sanitizeFilename(filename)
	path := filepath.Join(c.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("writing upload: %w", err)
	}

	return PublicPathPrefix + name, nil
}

func (c *LocalClient) Delete(imageURL string) error {
	name := strings.TrimPrefix(imageURL, PublicPathPrefix)
	// Reject anything that could escape the upload directory.
	if name == "" || name != filepath.Base(name) {
		return fmt.Errorf("invalid upload path %q", imageURL)
	}
	err := os.Remove(filepath.Join(c.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
