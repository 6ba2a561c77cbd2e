package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sh4dowyy/podoloog-sub000/models"
	"github.com/Sh4dowyy/podoloog-sub000/repository"
	"github.com/Sh4dowyy/podoloog-sub000/utils"
)

type servicePayload struct {
	Title         string  `json:"title"`
	TitleEt       string  `json:"title_et"`
	TitleRu       string  `json:"title_ru"`
	Description   string  `json:"description"`
	DescriptionEt string  `json:"description_et"`
	DescriptionRu string  `json:"description_ru"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	Duration      string  `json:"duration"`
	ImageURL      string  `json:"image_url"`
	Published     bool    `json:"published"`
}

func (p servicePayload) validate() string {
	if p.TitleEt == "" && p.TitleRu == "" && p.Title == "" {
		return "title is required"
	}
	if p.Price < 0 {
		return "price must be >= 0"
	}
	return ""
}

type ServiceController struct {
	repo *repository.Repository[models.Service]
}

func NewServiceController() *ServiceController {
	return &ServiceController{
		repo: repository.New[models.Service](repository.Config{PublishColumn: "published"}),
	}
}

// GET /services — публичный прайс опубликованных услуг.
func (sc *ServiceController) ListPublished(c *gin.Context) {
	lang := getLang(c)
	services, err := sc.repo.ListPublished()
	if err != nil {
		utils.LogError(err, "services list")
		services = nil
	}
	items := make([]gin.H, 0, len(services))
	for _, s := range services {
		items = append(items, sc.toItem(s, lang))
	}
	ok(c, items)
}

// GET /admin/services
func (sc *ServiceController) List(c *gin.Context) {
	services, err := sc.repo.ListAll()
	if err != nil {
		failErr(c, err, "failed to fetch services")
		return
	}
	ok(c, services)
}

// GET /admin/services/:id
func (sc *ServiceController) GetByID(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	service, err := sc.repo.GetByID(id)
	if err != nil {
		failErr(c, err, "service not found")
		return
	}
	ok(c, service)
}

// POST /admin/services
func (sc *ServiceController) Create(c *gin.Context) {
	var req servicePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "invalid request")
		return
	}
	if msg := req.validate(); msg != "" {
		fail(c, 400, msg)
		return
	}
	if req.Currency == "" {
		req.Currency = "EUR"
	}
	service := models.Service{
		Title:         req.Title,
		TitleEt:       req.TitleEt,
		TitleRu:       req.TitleRu,
		Description:   req.Description,
		DescriptionEt: req.DescriptionEt,
		DescriptionRu: req.DescriptionRu,
		Price:         req.Price,
		Currency:      req.Currency,
		Duration:      req.Duration,
		ImageURL:      req.ImageURL,
		Published:     req.Published,
	}
	if err := sc.repo.Create(&service); err != nil {
		failErr(c, err, "failed to create service")
		return
	}
	created(c, service)
}

// PUT /admin/services/:id
func (sc *ServiceController) Update(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	var req servicePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "invalid request")
		return
	}
	if msg := req.validate(); msg != "" {
		fail(c, 400, msg)
		return
	}
	service, err := sc.repo.GetByID(id)
	if err != nil {
		failErr(c, err, "service not found")
		return
	}
	if service.ImageURL != "" && service.ImageURL != req.ImageURL {
		utils.RemoveImage(service.ImageURL)
	}
	service.Title = req.Title
	service.TitleEt = req.TitleEt
	service.TitleRu = req.TitleRu
	service.Description = req.Description
	service.DescriptionEt = req.DescriptionEt
	service.DescriptionRu = req.DescriptionRu
	service.Price = req.Price
	if req.Currency != "" {
		service.Currency = req.Currency
	}
	service.Duration = req.Duration
	service.ImageURL = req.ImageURL
	service.Published = req.Published
	if err := sc.repo.Save(service); err != nil {
		failErr(c, err, "failed to update service")
		return
	}
	ok(c, service)
}

// DELETE /admin/services/:id
func (sc *ServiceController) Delete(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	service, err := sc.repo.GetByID(id)
	if err != nil {
		failErr(c, err, "service not found")
		return
	}
	if err := sc.repo.Delete(id); err != nil {
		failErr(c, err, "failed to delete service")
		return
	}
	if service.ImageURL != "" {
		utils.RemoveImage(service.ImageURL)
	}
	ok(c, gin.H{"id": id})
}

func (sc *ServiceController) toItem(s models.Service, lang string) gin.H {
	return gin.H{
		"id":          s.ID,
		"title":       utils.ResolveLocalized(lang, s.TitleEt, s.TitleRu, s.Title),
		"description": utils.ResolveLocalized(lang, s.DescriptionEt, s.DescriptionRu, s.Description),
		"price":       s.Price,
		"currency":    s.Currency,
		"duration":    s.Duration,
		"image_url":   s.ImageURL,
		"created_at":  s.CreatedAt.Format(time.RFC3339),
	}
}
