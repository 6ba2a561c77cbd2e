package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Лимиты размера загружаемых изображений.
const (
	MaxImageSize        = 5 << 20  // 5 MB — галерея, дипломы, услуги, биомеханика
	MaxGenericImageSize = 10 << 20 // 10 MB — общий админский аплоад
)

// UploadRoot — корень файлового хранилища, раздаётся статикой по /uploads.
const UploadRoot = "./uploads"

var imageExtByType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ValidateImage проверяет размер и тип файла ДО какой-либо записи на диск.
// Тип определяется по содержимому (сниффинг первых 512 байт), не по расширению.
// GIF разрешён только для общего админского аплоада.
// Возвращает каноническое расширение для сохранённого файла.
func ValidateImage(fh *multipart.FileHeader, maxSize int64, allowGIF bool) (string, error) {
	if fh == nil {
		return "", ErrValidation
	}
	if fh.Size > maxSize {
		return "", ErrTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return "", ErrUploadFailed
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return "", ErrUploadFailed
	}
	contentType := http.DetectContentType(head[:n])
	ext, ok := imageExtByType[contentType]
	if !ok {
		return "", ErrInvalidType
	}
	if contentType == "image/gif" && !allowGIF {
		return "", ErrInvalidType
	}
	return ext, nil
}

// SaveImage сохраняет проверенный файл в uploads/<folder> под
// коллизионно-стойким именем и возвращает публичный URL и имя файла.
func SaveImage(fh *multipart.FileHeader, folder, ext string) (string, string, error) {
	dstDir := filepath.Join(UploadRoot, folder)
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return "", "", ErrUploadFailed
	}

	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), uuid.NewString()[:8], ext)
	dstPath := filepath.Join(dstDir, filename)

	src, err := fh.Open()
	if err != nil {
		return "", "", ErrUploadFailed
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", "", ErrUploadFailed
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", "", ErrUploadFailed
	}
	return "/uploads/" + folder + "/" + filename, filename, nil
}

// RemoveImage best-effort удаляет старый файл по его публичному URL.
// Неуспех не прерывает сохранение записи — только лог.
func RemoveImage(publicURL string) {
	if !strings.HasPrefix(publicURL, "/uploads/") {
		return
	}
	rel := strings.TrimPrefix(publicURL, "/uploads/")
	if rel == "" || strings.Contains(rel, "..") {
		return
	}
	if err := os.Remove(filepath.Join(UploadRoot, filepath.FromSlash(rel))); err != nil && !os.IsNotExist(err) {
		LogError(err, "remove old upload")
	}
}
