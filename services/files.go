package services

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"MediLink360/util"

	"github.com/google/uuid"
)

// FileService stores uploaded binaries under the public upload
// directory and hands back the path they are served from.
type FileService struct {
	dir     string
	maxSize int64
}

func NewFileService(dir string, maxSize int64) *FileService {
	return &FileService{dir: dir, maxSize: maxSize}
}

// SaveImage stores a profile-picture upload. Anything that does not
// declare an image content type is rejected.
func (s *FileService) SaveImage(file *multipart.FileHeader, field string) (string, error) {
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return "", util.ValidationError(util.ONLY_IMAGES_ALLOWED)
	}
	return s.save(file, field)
}

// SavePDF stores a prescription PDF upload. PDFs are accepted by field
// context, so there is no content-type restriction here.
func (s *FileService) SavePDF(file *multipart.FileHeader, field string) (string, error) {
	return s.save(file, field)
}

/*
* Enforce the size ceiling
* Build a collision-resistant name: field, timestamp, random suffix, original extension
* Copy the bytes under the upload dir and return the public path
 */
func (s *FileService) save(file *multipart.FileHeader, field string) (string, error) {
	if file.Size > s.maxSize {
		return "", util.ValidationError(util.FILE_TOO_LARGE)
	}

	name := fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixMilli(), uuid.NewString()[:8], filepath.Ext(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		log.Println("Error copying upload to disk: ", err)
		return "", err
	}

	return "/uploads/" + name, nil
}
