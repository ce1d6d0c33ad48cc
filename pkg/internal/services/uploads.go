package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

var ErrNotImage = errors.New("uploaded file is not a valid image")

// StoreImage sniffs the uploaded file's real content type and persists it
// under the uploads directory. Returns the relative path recorded on the
// post, or ErrNotImage before anything touches the disk.
func StoreImage(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("unable to open uploaded file: %v", err)
	}
	defer src.Close()

	mime, err := mimetype.DetectReader(src)
	if err != nil {
		return "", fmt.Errorf("unable to detect uploaded file type: %v", err)
	}
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", ErrNotImage
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("unable to rewind uploaded file: %v", err)
	}

	directory := filepath.Join(viper.GetString("content.uploads_path"), "posts")
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return "", fmt.Errorf("unable to prepare uploads directory: %v", err)
	}

	name := uuid.New().String() + mime.Extension()
	dst, err := os.Create(filepath.Join(directory, name))
	if err != nil {
		return "", fmt.Errorf("unable to create image file: %v", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("unable to write image file: %v", err)
	}

	return filepath.Join("posts", name), nil
}
