package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sh4dowyy/podoloog-sub000/utils"
)

// UploadController принимает multipart-загрузки изображений.
// Валидация типа и размера выполняется до записи на диск.
type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// validFolder допускает только плоские имена папок: буквы, цифры, дефис.
func validFolder(folder string) bool {
	if folder == "" || len(folder) > 50 {
		return false
	}
	for _, r := range folder {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '_' {
			continue
		}
		return false
	}
	return true
}

// POST /api/gallery/upload — изображение галереи, лимит 5 МБ, без GIF.
func (uc *UploadController) GalleryUpload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		fail(c, 400, "file is required")
		return
	}
	ext, err := utils.ValidateImage(fh, utils.MaxImageSize, false)
	if err != nil {
		failErr(c, err, "")
		return
	}
	url, filename, err := utils.SaveImage(fh, "gallery", ext)
	if err != nil {
		failErr(c, err, "failed to save file")
		return
	}
	c.JSON(http.StatusOK, gin.H{"imageUrl": url, "fileName": filename})
}

// POST /api/upload — общий админский аплоад, лимит 10 МБ, GIF разрешён.
func (uc *UploadController) GenericUpload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		fail(c, 400, "file is required")
		return
	}
	ext, err := utils.ValidateImage(fh, utils.MaxGenericImageSize, true)
	if err != nil {
		failErr(c, err, "")
		return
	}
	folder := c.DefaultPostForm("folder", "general")
	if !validFolder(folder) {
		fail(c, 400, "invalid folder")
		return
	}
	url, filename, err := utils.SaveImage(fh, folder, ext)
	if err != nil {
		failErr(c, err, "failed to save file")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url, "fileName": filename})
}
