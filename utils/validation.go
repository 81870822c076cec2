package utils

import (
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxUploadSize caps product image uploads at 5MB.
const MaxUploadSize = 5 << 20

var imageContentTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

// ValidateFileUpload rejects uploads that are too large or not an image.
func ValidateFileUpload(fh *multipart.FileHeader) error {
	if fh.Size > MaxUploadSize {
		return fmt.Errorf("file size %d bytes exceeds maximum allowed size of 5MB", fh.Size)
	}

	contentType := fh.Header.Get("Content-Type")
	for _, allowed := range imageContentTypes {
		if contentType == allowed {
			return nil
		}
	}
	return fmt.Errorf("invalid file type '%s'; allowed types: %s",
		contentType, strings.Join(imageContentTypes, ", "))
}

// SanitizeValidationError turns a binding error into a client-facing message
// without leaking Go struct internals.
func SanitizeValidationError(err error) string {
	if err == nil {
		return ""
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Invalid request body"
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			messages = append(messages, field+" is required")
		case "email":
			messages = append(messages, field+" must be a valid email address")
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		default:
			messages = append(messages, field+" is invalid")
		}
	}
	if len(messages) == 0 {
		return "Invalid request body"
	}
	return strings.Join(messages, "; ")
}
