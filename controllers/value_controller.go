package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Sh4dowyy/podoloog-sub000/models"
	"github.com/Sh4dowyy/podoloog-sub000/repository"
	"github.com/Sh4dowyy/podoloog-sub000/utils"
)

type valuePayload struct {
	TitleEt       string `json:"title_et" binding:"required"`
	TitleRu       string `json:"title_ru" binding:"required"`
	DescriptionEt string `json:"description_et"`
	DescriptionRu string `json:"description_ru"`
	Icon          string `json:"icon"`
	OrderIndex    int    `json:"order_index"`
	IsActive      *bool  `json:"is_active"`
}

type ValueController struct {
	repo *repository.Repository[models.Value]
}

func NewValueController() *ValueController {
	return &ValueController{
		repo: repository.New[models.Value](repository.Config{
			PublishColumn: "is_active",
			DefaultOrder:  "order_index ASC",
		}),
	}
}

// GET /values — активные ценности в порядке order_index.
func (vc *ValueController) ListActive(c *gin.Context) {
	lang := getLang(c)
	values, err := vc.repo.ListPublished()
	if err != nil {
		utils.LogError(err, "values list")
		values = nil
	}
	items := make([]gin.H, 0, len(values))
	for _, v := range values {
		items = append(items, vc.toItem(v, lang))
	}
	ok(c, items)
}

// GET /admin/values
func (vc *ValueController) List(c *gin.Context) {
	values, err := vc.repo.ListAll()
	if err != nil {
		failErr(c, err, "failed to fetch values")
		return
	}
	ok(c, values)
}

// GET /admin/values/:id
func (vc *ValueController) GetByID(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	value, err := vc.repo.GetByID(id)
	if err != nil {
		failErr(c, err, "value not found")
		return
	}
	ok(c, value)
}

// POST /admin/values
func (vc *ValueController) Create(c *gin.Context) {
	var req valuePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "title_et and title_ru are required")
		return
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	value := models.Value{
		TitleEt:       req.TitleEt,
		TitleRu:       req.TitleRu,
		DescriptionEt: req.DescriptionEt,
		DescriptionRu: req.DescriptionRu,
		Icon:          req.Icon,
		OrderIndex:    req.OrderIndex,
		IsActive:      isActive,
	}
	if err := vc.repo.Create(&value); err != nil {
		failErr(c, err, "failed to create value")
		return
	}
	created(c, value)
}

// PUT /admin/values/:id
func (vc *ValueController) Update(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	var req valuePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "title_et and title_ru are required")
		return
	}
	value, err := vc.repo.GetByID(id)
	if err != nil {
		failErr(c, err, "value not found")
		return
	}
	value.TitleEt = req.TitleEt
	value.TitleRu = req.TitleRu
	value.DescriptionEt = req.DescriptionEt
	value.DescriptionRu = req.DescriptionRu
	value.Icon = req.Icon
	value.OrderIndex = req.OrderIndex
	if req.IsActive != nil {
		value.IsActive = *req.IsActive
	}
	if err := vc.repo.Save(value); err != nil {
		failErr(c, err, "failed to update value")
		return
	}
	ok(c, value)
}

// DELETE /admin/values/:id
func (vc *ValueController) Delete(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	if err := vc.repo.Delete(id); err != nil {
		failErr(c, err, "failed to delete value")
		return
	}
	ok(c, gin.H{"id": id})
}

func (vc *ValueController) toItem(v models.Value, lang string) gin.H {
	return gin.H{
		"id":          v.ID,
		"title":       utils.ResolveLocalized(lang, v.TitleEt, v.TitleRu, ""),
		"description": utils.ResolveLocalized(lang, v.DescriptionEt, v.DescriptionRu, ""),
		"icon":        v.Icon,
		"order_index": v.OrderIndex,
	}
}
