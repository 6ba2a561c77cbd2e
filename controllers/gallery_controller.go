package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sh4dowyy/podoloog-sub000/models"
	"github.com/Sh4dowyy/podoloog-sub000/repository"
	"github.com/Sh4dowyy/podoloog-sub000/utils"
)

type galleryPayload struct {
	Title         string `json:"title"`
	TitleRu       string `json:"title_ru"`
	Description   string `json:"description"`
	DescriptionRu string `json:"description_ru"`
	ImageURL      string `json:"image_url"`
}

// GalleryController обслуживает REST /api/gallery.
// Формат ответов этой группы исторически отличается от остального API:
// список отдаёт {success, data, count}.
type GalleryController struct {
	repo *repository.Repository[models.GalleryItem]
}

func NewGalleryController() *GalleryController {
	return &GalleryController{
		repo: repository.New[models.GalleryItem](repository.Config{}),
	}
}

// GET /api/gallery?limit=&offset=
func (gc *GalleryController) List(c *gin.Context) {
	limit := 0
	offset := 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			offset = n
		}
	}
	items, total, err := gc.repo.ListPage(limit, offset)
	if err != nil {
		utils.LogError(err, "gallery list")
		items, total = []models.GalleryItem{}, 0
	}
	if items == nil {
		items = []models.GalleryItem{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items, "count": total})
}

// GET /api/gallery/:id
func (gc *GalleryController) GetByID(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	item, err := gc.repo.GetByID(id)
	if err != nil {
		failErr(c, err, "gallery item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

// POST /api/gallery — title, title_ru и image_url обязательны.
func (gc *GalleryController) Create(c *gin.Context) {
	var req galleryPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "invalid request")
		return
	}
	if req.Title == "" || req.TitleRu == "" || req.ImageURL == "" {
		fail(c, 400, "title, title_ru and image_url are required")
		return
	}
	item := models.GalleryItem{
		Title:         req.Title,
		TitleRu:       req.TitleRu,
		Description:   req.Description,
		DescriptionRu: req.DescriptionRu,
		ImageURL:      req.ImageURL,
	}
	if err := gc.repo.Create(&item); err != nil {
		failErr(c, err, "failed to create gallery item")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": item})
}

// PUT /api/gallery/:id
func (gc *GalleryController) Update(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	var req galleryPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "invalid request")
		return
	}
	item, err := gc.repo.GetByID(id)
	if err != nil {
		failErr(c, err, "gallery item not found")
		return
	}
	if req.ImageURL != "" && item.ImageURL != req.ImageURL {
		utils.RemoveImage(item.ImageURL)
		item.ImageURL = req.ImageURL
	}
	if req.Title != "" {
		item.Title = req.Title
	}
	if req.TitleRu != "" {
		item.TitleRu = req.TitleRu
	}
	item.Description = req.Description
	item.DescriptionRu = req.DescriptionRu
	if err := gc.repo.Save(item); err != nil {
		failErr(c, err, "failed to update gallery item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

// DELETE /api/gallery/:id
func (gc *GalleryController) Delete(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	item, err := gc.repo.GetByID(id)
	if err != nil {
		failErr(c, err, "gallery item not found")
		return
	}
	if err := gc.repo.Delete(id); err != nil {
		failErr(c, err, "failed to delete gallery item")
		return
	}
	utils.RemoveImage(item.ImageURL)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"id": id}})
}
