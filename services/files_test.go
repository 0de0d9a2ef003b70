package services

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"MediLink360/util"

	"github.com/stretchr/testify/assert"
)

// fileHeader builds a real multipart.FileHeader the way gin would hand
// it to a handler.
func fileHeader(t *testing.T, field, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	assert.NoError(t, err)
	return form.File[field][0]
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	files := NewFileService(dir, 5<<20)

	path, err := files.SaveImage(fileHeader(t, "profilePicture", "me.png", "image/png", []byte("png-bytes")), "profilePicture")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/uploads/profilePicture-"))
	assert.True(t, strings.HasSuffix(path, ".png"))

	onDisk := filepath.Join(dir, strings.TrimPrefix(path, "/uploads/"))
	content, err := os.ReadFile(onDisk)
	assert.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), content)
}

func TestSaveImage_RejectsNonImage(t *testing.T) {
	files := NewFileService(t.TempDir(), 5<<20)

	_, err := files.SaveImage(fileHeader(t, "profilePicture", "cv.pdf", "application/pdf", []byte("%PDF")), "profilePicture")
	assert.Error(t, err)
	assert.Equal(t, 400, util.StatusOf(err))
}

func TestSave_RejectsOversize(t *testing.T) {
	files := NewFileService(t.TempDir(), 8)

	_, err := files.SavePDF(fileHeader(t, "pdf", "rx.pdf", "application/pdf", []byte("more than eight bytes")), "pdf")
	assert.Error(t, err)
	assert.Equal(t, 400, util.StatusOf(err))
}

func TestSavePDF_NoTypeRestriction(t *testing.T) {
	files := NewFileService(t.TempDir(), 5<<20)

	path, err := files.SavePDF(fileHeader(t, "pdf", "rx.pdf", "application/octet-stream", []byte("%PDF-1.4")), "pdf")
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".pdf"))
}
