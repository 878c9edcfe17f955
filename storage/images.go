package storage

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotImage is returned by Save for uploads that are not image files.
var ErrNotImage = errors.New("only image files are allowed")

var uploadDir string

// Init creates the upload directory if it does not exist and makes it
// the target for all subsequent Save/Remove calls.
func Init(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	uploadDir = dir
	return nil
}

// Dir returns the configured upload directory.
func Dir() string {
	return uploadDir
}

// Filename builds a collision-resistant name for an upload: the form
// field name, the current unix-milli timestamp, a random suffix and
// the original file extension.
func Filename(field, original string) string {
	return fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixMilli(), uuid.New().String(), filepath.Ext(original))
}

// Save writes an uploaded image into the upload directory and returns
// the generated filename.
func Save(field string, fh *multipart.FileHeader) (string, error) {
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return "", ErrNotImage
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := Filename(field, fh.Filename)
	dst, err := os.Create(filepath.Join(uploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

// Remove deletes a stored image. Cleanup is best effort: the owning
// row mutation has already committed by the time this runs, so
// failures are logged and swallowed. The "null"/"undefined" sentinels
// the frontend sends for an empty field are ignored.
func Remove(filename string) {
	if filename == "" || filename == "null" || filename == "undefined" {
		return
	}
	path := filepath.Join(uploadDir, filepath.Base(filename))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("Error deleting image %s: %v", filename, err)
	}
}
