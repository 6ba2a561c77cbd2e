package controllers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sh4dowyy/podoloog-sub000/utils"
)

var pngBytes = append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)

func doUpload(t *testing.T, r *gin.Engine, path, token string, content []byte, fields map[string]string) (int, map[string]interface{}) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("file", "photo.png")
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", path, body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var resp map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec.Code, resp
}

func TestGalleryUploadSavesFile(t *testing.T) {
	r := setupAPI(t)
	token := adminToken(t)

	code, resp := doUpload(t, r, "/api/gallery/upload", token, pngBytes, nil)
	require.Equal(t, 200, code)

	url := resp["imageUrl"].(string)
	assert.Contains(t, url, "/uploads/gallery/")
	assert.NotEmpty(t, resp["fileName"])
	t.Cleanup(func() { utils.RemoveImage(url) })
}

func TestGalleryUploadRequiresAuth(t *testing.T) {
	r := setupAPI(t)
	code, _ := doUpload(t, r, "/api/gallery/upload", "", pngBytes, nil)
	assert.Equal(t, 401, code)
}

func TestGalleryUploadRejectsNonImage(t *testing.T) {
	r := setupAPI(t)
	token := adminToken(t)

	code, resp := doUpload(t, r, "/api/gallery/upload", token, []byte("plain text, not an image"), nil)
	assert.Equal(t, 400, code)
	assert.Equal(t, false, resp["success"])
}

func TestGalleryUploadRejectsGIF(t *testing.T) {
	r := setupAPI(t)
	token := adminToken(t)

	gif := append([]byte("GIF89a"), make([]byte, 32)...)
	code, _ := doUpload(t, r, "/api/gallery/upload", token, gif, nil)
	assert.Equal(t, 400, code)
}

func TestGenericUploadAllowsGIFAndFolder(t *testing.T) {
	r := setupAPI(t)
	token := adminToken(t)

	gif := append([]byte("GIF89a"), make([]byte, 32)...)
	code, resp := doUpload(t, r, "/api/upload", token, gif, map[string]string{"folder": "blog"})
	require.Equal(t, 200, code)

	url := resp["url"].(string)
	assert.Contains(t, url, "/uploads/blog/")
	t.Cleanup(func() { utils.RemoveImage(url) })
}

func TestGenericUploadRejectsBadFolder(t *testing.T) {
	r := setupAPI(t)
	token := adminToken(t)

	for _, folder := range []string{"../etc", "Blog", "a b", ""} {
		code, _ := doUpload(t, r, "/api/upload", token, pngBytes, map[string]string{"folder": folder})
		assert.Equal(t, 400, code, folder)
	}
}
