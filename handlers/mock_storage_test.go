package handlers

import (
	"errors"
	"mime/multipart"
)

// mockStorage records upload and delete calls without touching disk.
type mockStorage struct {
	uploads []string
	deletes []string
	failAll bool
}

func (m *mockStorage) UploadProductImage(file multipart.File, filename, contentType string) (string, error) {
	if m.failAll {
		return "", errors.New("storage unavailable")
	}
	m.uploads = append(m.uploads, filename)
	return "https://cdn.test/" + filename, nil
}

func (m *mockStorage) Delete(imageURL string) error {
	if m.failAll {
		return errors.New("storage unavailable")
	}
	m.deletes = append(m.deletes, imageURL)
	return nil
}
