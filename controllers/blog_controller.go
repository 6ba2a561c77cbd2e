package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sh4dowyy/podoloog-sub000/models"
	"github.com/Sh4dowyy/podoloog-sub000/repository"
	"github.com/Sh4dowyy/podoloog-sub000/utils"
)

type blogPostPayload struct {
	Title         string `json:"title"`
	TitleEt       string `json:"title_et"`
	TitleRu       string `json:"title_ru"`
	Description   string `json:"description"`
	DescriptionEt string `json:"description_et"`
	DescriptionRu string `json:"description_ru"`
	Content       string `json:"content"`
	ContentEt     string `json:"content_et"`
	ContentRu     string `json:"content_ru"`
	ImageURL      string `json:"image_url"`
	Published     bool   `json:"published"`
}

type BlogController struct {
	repo *repository.Repository[models.BlogPost]
}

func NewBlogController() *BlogController {
	return &BlogController{
		repo: repository.New[models.BlogPost](repository.Config{PublishColumn: "published"}),
	}
}

// slugSource — заголовок, из которого строится слаг: эстонский в приоритете.
func (bc *BlogController) slugSource(req blogPostPayload) string {
	if req.TitleEt != "" {
		return req.TitleEt
	}
	if req.TitleRu != "" {
		return req.TitleRu
	}
	return req.Title
}

// uniqueSlug подбирает свободный слаг, добавляя -2, -3, ... при коллизиях.
func uniqueSlug(db *gorm.DB, base string, excludeID uint) (string, error) {
	slug := base
	i := 1
	for {
		var count int64
		q := db.Model(&models.BlogPost{}).Where("slug = ?", slug)
		if excludeID > 0 {
			q = q.Where("id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		i++
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// GET /blog — публичный список опубликованных статей (без контента).
func (bc *BlogController) ListPublished(c *gin.Context) {
	lang := getLang(c)
	posts, err := bc.repo.ListPublished()
	if err != nil {
		utils.LogError(err, "blog list")
		posts = nil
	}
	items := make([]gin.H, 0, len(posts))
	for _, p := range posts {
		items = append(items, bc.toListItem(p, lang))
	}
	ok(c, items)
}

// GET /blog/:slug — публичная статья по слагу, только опубликованная.
func (bc *BlogController) GetBySlug(c *gin.Context) {
	db := utils.GetDB()
	if db == nil {
		failErr(c, utils.ErrServiceUnavailable, "")
		return
	}
	lang := getLang(c)
	var post models.BlogPost
	if err := db.Where("slug = ? AND published = ?", c.Param("slug"), true).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, 404, "post not found")
			return
		}
		failErr(c, utils.ErrBackend, "failed to fetch post")
		return
	}
	ok(c, bc.toFullItem(post, lang))
}

// GET /admin/blog
func (bc *BlogController) List(c *gin.Context) {
	posts, err := bc.repo.ListAll()
	if err != nil {
		failErr(c, err, "failed to fetch posts")
		return
	}
	ok(c, posts)
}

// GET /admin/blog/:id
func (bc *BlogController) GetByID(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	post, err := bc.repo.GetByID(id)
	if err != nil {
		failErr(c, err, "post not found")
		return
	}
	ok(c, post)
}

// POST /admin/blog
func (bc *BlogController) Create(c *gin.Context) {
	var req blogPostPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "invalid request")
		return
	}
	source := bc.slugSource(req)
	if source == "" {
		fail(c, 400, "title is required")
		return
	}
	db := utils.GetDB()
	if db == nil {
		failErr(c, utils.ErrServiceUnavailable, "")
		return
	}
	slug, err := uniqueSlug(db, utils.GenerateSlug(source), 0)
	if err != nil {
		fail(c, 500, "failed to generate slug")
		return
	}
	post := models.BlogPost{
		Title:         req.Title,
		TitleEt:       req.TitleEt,
		TitleRu:       req.TitleRu,
		Description:   req.Description,
		DescriptionEt: req.DescriptionEt,
		DescriptionRu: req.DescriptionRu,
		Content:       ugcPolicy.Sanitize(req.Content),
		ContentEt:     ugcPolicy.Sanitize(req.ContentEt),
		ContentRu:     ugcPolicy.Sanitize(req.ContentRu),
		ImageURL:      req.ImageURL,
		Slug:          slug,
		Published:     req.Published,
	}
	if err := bc.repo.Create(&post); err != nil {
		failErr(c, err, "failed to create post")
		return
	}
	created(c, post)
}

// PUT /admin/blog/:id — слаг пересобирается из актуального заголовка.
func (bc *BlogController) Update(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	var req blogPostPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "invalid request")
		return
	}
	source := bc.slugSource(req)
	if source == "" {
		fail(c, 400, "title is required")
		return
	}
	post, err := bc.repo.GetByID(id)
	if err != nil {
		failErr(c, err, "post not found")
		return
	}
	db := utils.GetDB()
	if db == nil {
		failErr(c, utils.ErrServiceUnavailable, "")
		return
	}
	slug, err := uniqueSlug(db, utils.GenerateSlug(source), post.ID)
	if err != nil {
		fail(c, 500, "failed to generate slug")
		return
	}
	if post.ImageURL != "" && post.ImageURL != req.ImageURL {
		utils.RemoveImage(post.ImageURL)
	}
	post.Title = req.Title
	post.TitleEt = req.TitleEt
	post.TitleRu = req.TitleRu
	post.Description = req.Description
	post.DescriptionEt = req.DescriptionEt
	post.DescriptionRu = req.DescriptionRu
	post.Content = ugcPolicy.Sanitize(req.Content)
	post.ContentEt = ugcPolicy.Sanitize(req.ContentEt)
	post.ContentRu = ugcPolicy.Sanitize(req.ContentRu)
	post.ImageURL = req.ImageURL
	post.Slug = slug
	post.Published = req.Published
	if err := bc.repo.Save(post); err != nil {
		failErr(c, err, "failed to update post")
		return
	}
	ok(c, post)
}

// DELETE /admin/blog/:id
func (bc *BlogController) Delete(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	post, err := bc.repo.GetByID(id)
	if err != nil {
		failErr(c, err, "post not found")
		return
	}
	if err := bc.repo.Delete(id); err != nil {
		failErr(c, err, "failed to delete post")
		return
	}
	if post.ImageURL != "" {
		utils.RemoveImage(post.ImageURL)
	}
	ok(c, gin.H{"id": id})
}

func (bc *BlogController) toListItem(p models.BlogPost, lang string) gin.H {
	return gin.H{
		"id":          p.ID,
		"title":       utils.ResolveLocalized(lang, p.TitleEt, p.TitleRu, p.Title),
		"description": utils.ResolveLocalized(lang, p.DescriptionEt, p.DescriptionRu, p.Description),
		"image_url":   p.ImageURL,
		"slug":        p.Slug,
		"created_at":  p.CreatedAt.Format(time.RFC3339),
	}
}

func (bc *BlogController) toFullItem(p models.BlogPost, lang string) gin.H {
	item := bc.toListItem(p, lang)
	item["content"] = utils.ResolveLocalized(lang, p.ContentEt, p.ContentRu, p.Content)
	item["updated_at"] = p.UpdatedAt.Format(time.RFC3339)
	return item
}
