package utils

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

func makeFileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

func TestValidateImageAcceptsPNG(t *testing.T) {
	fh := makeFileHeader(t, "photo.png", append(pngHeader, make([]byte, 100)...))
	ext, err := ValidateImage(fh, MaxImageSize, false)
	assert.NoError(t, err)
	assert.Equal(t, ".png", ext)
}

func TestValidateImageRejectsOversized(t *testing.T) {
	big := append(pngHeader, make([]byte, MaxImageSize)...)
	fh := makeFileHeader(t, "big.png", big)
	_, err := ValidateImage(fh, MaxImageSize, false)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestValidateImageRejectsNonImageByContent(t *testing.T) {
	// расширение .png, содержимое — текст: сниффинг должен отсечь
	fh := makeFileHeader(t, "notes.png", []byte("just some plain text"))
	_, err := ValidateImage(fh, MaxImageSize, false)
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestValidateImageGIFOnlyWhenAllowed(t *testing.T) {
	gif := append([]byte("GIF89a"), make([]byte, 50)...)

	fh := makeFileHeader(t, "anim.gif", gif)
	_, err := ValidateImage(fh, MaxGenericImageSize, false)
	assert.ErrorIs(t, err, ErrInvalidType)

	fh = makeFileHeader(t, "anim.gif", gif)
	ext, err := ValidateImage(fh, MaxGenericImageSize, true)
	assert.NoError(t, err)
	assert.Equal(t, ".gif", ext)
}

func TestValidateImageNilHeader(t *testing.T) {
	_, err := ValidateImage(nil, MaxImageSize, false)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSaveImageWritesFileAndReturnsPublicURL(t *testing.T) {
	fh := makeFileHeader(t, "photo.png", append(pngHeader, make([]byte, 10)...))
	url, filename, err := SaveImage(fh, "gallery", ".png")
	require.NoError(t, err)
	t.Cleanup(func() { RemoveImage(url) })

	assert.True(t, strings.HasPrefix(url, "/uploads/gallery/"))
	assert.True(t, strings.HasSuffix(filename, ".png"))

	_, err = os.Stat(filepath.Join(UploadRoot, "gallery", filename))
	assert.NoError(t, err)
}

func TestRemoveImageIgnoresForeignAndTraversalPaths(t *testing.T) {
	// не паникует и не трогает ничего вне uploads/
	RemoveImage("https://cdn.example.com/x.png")
	RemoveImage("/uploads/../main.go")
	RemoveImage("/uploads/")
	RemoveImage("/uploads/gallery/does-not-exist.png")
}
