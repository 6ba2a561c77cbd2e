package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sh4dowyy/podoloog-sub000/models"
	"github.com/Sh4dowyy/podoloog-sub000/repository"
	"github.com/Sh4dowyy/podoloog-sub000/utils"
)

type credentialPayload struct {
	TitleEt       string `json:"title_et" binding:"required"`
	TitleRu       string `json:"title_ru"`
	DescriptionEt string `json:"description_et"`
	DescriptionRu string `json:"description_ru"`
	ImageURL      string `json:"image_url"`
	IsPublished   bool   `json:"is_published"`
}

type CredentialController struct {
	repo *repository.Repository[models.Credential]
}

func NewCredentialController() *CredentialController {
	return &CredentialController{
		repo: repository.New[models.Credential](repository.Config{PublishColumn: "is_published"}),
	}
}

// GET /credentials — публичный список опубликованных дипломов.
// При сбое бэкенда страница деградирует в пустой список, а не в ошибку.
func (cc *CredentialController) ListPublished(c *gin.Context) {
	lang := getLang(c)
	items, err := cc.repo.ListPublished()
	if err != nil {
		utils.LogError(err, "credentials list")
		items = nil
	}
	out := make([]gin.H, 0, len(items))
	for _, it := range items {
		out = append(out, cc.toItem(it, lang))
	}
	ok(c, out)
}

// GET /admin/credentials
func (cc *CredentialController) List(c *gin.Context) {
	items, err := cc.repo.ListAll()
	if err != nil {
		failErr(c, err, "failed to fetch credentials")
		return
	}
	ok(c, items)
}

// GET /admin/credentials/:id
func (cc *CredentialController) GetByID(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	item, err := cc.repo.GetByID(id)
	if err != nil {
		failErr(c, err, "credential not found")
		return
	}
	ok(c, item)
}

// POST /admin/credentials
func (cc *CredentialController) Create(c *gin.Context) {
	var req credentialPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "title_et is required")
		return
	}
	item := models.Credential{
		TitleEt:       req.TitleEt,
		TitleRu:       req.TitleRu,
		DescriptionEt: req.DescriptionEt,
		DescriptionRu: req.DescriptionRu,
		ImageURL:      req.ImageURL,
		IsPublished:   req.IsPublished,
	}
	if err := cc.repo.Create(&item); err != nil {
		failErr(c, err, "failed to create credential")
		return
	}
	created(c, item)
}

// PUT /admin/credentials/:id
func (cc *CredentialController) Update(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	var req credentialPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "title_et is required")
		return
	}
	item, err := cc.repo.GetByID(id)
	if err != nil {
		failErr(c, err, "credential not found")
		return
	}
	// замена картинки — старый файл подчищаем best-effort
	if item.ImageURL != "" && item.ImageURL != req.ImageURL {
		utils.RemoveImage(item.ImageURL)
	}
	item.TitleEt = req.TitleEt
	item.TitleRu = req.TitleRu
	item.DescriptionEt = req.DescriptionEt
	item.DescriptionRu = req.DescriptionRu
	item.ImageURL = req.ImageURL
	item.IsPublished = req.IsPublished
	if err := cc.repo.Save(item); err != nil {
		failErr(c, err, "failed to update credential")
		return
	}
	ok(c, item)
}

// DELETE /admin/credentials/:id
func (cc *CredentialController) Delete(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	item, err := cc.repo.GetByID(id)
	if err != nil {
		failErr(c, err, "credential not found")
		return
	}
	if err := cc.repo.Delete(id); err != nil {
		failErr(c, err, "failed to delete credential")
		return
	}
	if item.ImageURL != "" {
		utils.RemoveImage(item.ImageURL)
	}
	ok(c, gin.H{"id": id})
}

func (cc *CredentialController) toItem(it models.Credential, lang string) gin.H {
	return gin.H{
		"id":          it.ID,
		"title":       utils.ResolveLocalized(lang, it.TitleEt, it.TitleRu, ""),
		"description": utils.ResolveLocalized(lang, it.DescriptionEt, it.DescriptionRu, ""),
		"image_url":   it.ImageURL,
		"created_at":  it.CreatedAt.Format(time.RFC3339),
	}
}
