package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sh4dowyy/podoloog-sub000/models"
	"github.com/Sh4dowyy/podoloog-sub000/repository"
	"github.com/Sh4dowyy/podoloog-sub000/utils"
)

type biomechanicsPayload struct {
	Category      string `json:"category" binding:"required"`
	TitleEt       string `json:"title_et" binding:"required"`
	TitleRu       string `json:"title_ru"`
	DescriptionEt string `json:"description_et"`
	DescriptionRu string `json:"description_ru"`
	ContentEt     string `json:"content_et"`
	ContentRu     string `json:"content_ru"`
	ImageURL      string `json:"image_url"`
	IsPublished   bool   `json:"is_published"`
}

type BiomechanicsController struct {
	repo *repository.Repository[models.BiomechanicsItem]
}

func NewBiomechanicsController() *BiomechanicsController {
	return &BiomechanicsController{
		repo: repository.New[models.BiomechanicsItem](repository.Config{PublishColumn: "is_published"}),
	}
}

// GET /biomechanics?category= — публичные материалы, опционально по категории.
func (bc *BiomechanicsController) ListPublished(c *gin.Context) {
	lang := getLang(c)
	category := c.Query("category")
	if category != "" && !models.ValidBiomechanicsCategory(category) {
		fail(c, 400, "invalid category")
		return
	}
	items, err := bc.repo.ListPublished()
	if err != nil {
		utils.LogError(err, "biomechanics list")
		items = nil
	}
	out := make([]gin.H, 0, len(items))
	for _, it := range items {
		if category != "" && it.Category != category {
			continue
		}
		out = append(out, bc.toItem(it, lang))
	}
	ok(c, out)
}

// GET /admin/biomechanics
func (bc *BiomechanicsController) List(c *gin.Context) {
	items, err := bc.repo.ListAll()
	if err != nil {
		failErr(c, err, "failed to fetch items")
		return
	}
	ok(c, items)
}

// GET /admin/biomechanics/:id
func (bc *BiomechanicsController) GetByID(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	item, err := bc.repo.GetByID(id)
	if err != nil {
		failErr(c, err, "item not found")
		return
	}
	ok(c, item)
}

// POST /admin/biomechanics
func (bc *BiomechanicsController) Create(c *gin.Context) {
	var req biomechanicsPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "category and title_et are required")
		return
	}
	if !models.ValidBiomechanicsCategory(req.Category) {
		fail(c, 400, "invalid category")
		return
	}
	item := models.BiomechanicsItem{
		Category:      req.Category,
		TitleEt:       req.TitleEt,
		TitleRu:       req.TitleRu,
		DescriptionEt: req.DescriptionEt,
		DescriptionRu: req.DescriptionRu,
		ContentEt:     ugcPolicy.Sanitize(req.ContentEt),
		ContentRu:     ugcPolicy.Sanitize(req.ContentRu),
		ImageURL:      req.ImageURL,
		IsPublished:   req.IsPublished,
	}
	if err := bc.repo.Create(&item); err != nil {
		failErr(c, err, "failed to create item")
		return
	}
	created(c, item)
}

// PUT /admin/biomechanics/:id
func (bc *BiomechanicsController) Update(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	var req biomechanicsPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "category and title_et are required")
		return
	}
	if !models.ValidBiomechanicsCategory(req.Category) {
		fail(c, 400, "invalid category")
		return
	}
	item, err := bc.repo.GetByID(id)
	if err != nil {
		failErr(c, err, "item not found")
		return
	}
	if item.ImageURL != "" && item.ImageURL != req.ImageURL {
		utils.RemoveImage(item.ImageURL)
	}
	item.Category = req.Category
	item.TitleEt = req.TitleEt
	item.TitleRu = req.TitleRu
	item.DescriptionEt = req.DescriptionEt
	item.DescriptionRu = req.DescriptionRu
	item.ContentEt = ugcPolicy.Sanitize(req.ContentEt)
	item.ContentRu = ugcPolicy.Sanitize(req.ContentRu)
	item.ImageURL = req.ImageURL
	item.IsPublished = req.IsPublished
	if err := bc.repo.Save(item); err != nil {
		failErr(c, err, "failed to update item")
		return
	}
	ok(c, item)
}

// DELETE /admin/biomechanics/:id
func (bc *BiomechanicsController) Delete(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	item, err := bc.repo.GetByID(id)
	if err != nil {
		failErr(c, err, "item not found")
		return
	}
	if err := bc.repo.Delete(id); err != nil {
		failErr(c, err, "failed to delete item")
		return
	}
	if item.ImageURL != "" {
		utils.RemoveImage(item.ImageURL)
	}
	ok(c, gin.H{"id": id})
}

func (bc *BiomechanicsController) toItem(it models.BiomechanicsItem, lang string) gin.H {
	return gin.H{
		"id":          it.ID,
		"category":    it.Category,
		"title":       utils.ResolveLocalized(lang, it.TitleEt, it.TitleRu, ""),
		"description": utils.ResolveLocalized(lang, it.DescriptionEt, it.DescriptionRu, ""),
		"content":     utils.ResolveLocalized(lang, it.ContentEt, it.ContentRu, ""),
		"image_url":   it.ImageURL,
		"created_at":  it.CreatedAt.Format(time.RFC3339),
	}
}
