package http

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// saveTempImage writes the multipart "image" field to a temp file and
// returns its path, content type, and a cleanup func. The caller must
// defer cleanup so the temp file is removed whatever the gateway call
// does.
func saveTempImage(c *gin.Context) (string, string, func(), error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", "", nil, fmt.Errorf("no image provided")
	}

	ext := filepath.Ext(file.Filename)
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".gif" {
		return "", "", nil, fmt.Errorf("invalid image format, only jpg, jpeg, png, gif are allowed")
	}

	path := filepath.Join(os.TempDir(), uuid.New().String()+ext)
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", "", nil, fmt.Errorf("failed to save uploaded file: %w", err)
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	cleanup := func() { os.Remove(path) }
	return path, contentType, cleanup, nil
}
