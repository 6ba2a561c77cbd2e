package controllers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sh4dowyy/podoloog-sub000/models"
	"github.com/Sh4dowyy/podoloog-sub000/repository"
	"github.com/Sh4dowyy/podoloog-sub000/utils"
)

// Максимальная длина текста публичного отзыва.
const maxReviewLength = 1000

type reviewPayload struct {
	Content    string `json:"content"`
	ContentEt  string `json:"content_et"`
	ContentRu  string `json:"content_ru"`
	AuthorName string `json:"author_name"`
	Rating     *int   `json:"rating"`
	Published  bool   `json:"published"`
}

type ReviewController struct {
	repo *repository.Repository[models.Review]
}

func NewReviewController() *ReviewController {
	return &ReviewController{
		repo: repository.New[models.Review](repository.Config{PublishColumn: "published"}),
	}
}

// GET /reviews — публичный список опубликованных отзывов.
func (rc *ReviewController) ListPublished(c *gin.Context) {
	lang := getLang(c)
	reviews, err := rc.repo.ListPublished()
	if err != nil {
		utils.LogError(err, "reviews list")
		reviews = nil
	}
	items := make([]gin.H, 0, len(reviews))
	for _, r := range reviews {
		items = append(items, rc.toItem(r, lang))
	}
	ok(c, items)
}

// POST /api/reviews/public — отправка отзыва посетителем.
// Политика auto-publish: отзыв виден сразу, модерация постфактум из админки.
func (rc *ReviewController) CreatePublic(c *gin.Context) {
	allowed, msg := utils.CanSubmitReview(utils.GetRedis(), c.ClientIP())
	if !allowed {
		fail(c, 429, msg)
		return
	}
	var req reviewPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "invalid request")
		return
	}
	review, errMsg := rc.buildReview(req, true)
	if errMsg != "" {
		fail(c, 400, errMsg)
		return
	}
	if err := rc.repo.Create(review); err != nil {
		failErr(c, err, "failed to create review")
		return
	}
	utils.MarkReviewSubmitted(utils.GetRedis(), c.ClientIP())
	created(c, review)
}

// GET /admin/reviews
func (rc *ReviewController) List(c *gin.Context) {
	reviews, err := rc.repo.ListAll()
	if err != nil {
		failErr(c, err, "failed to fetch reviews")
		return
	}
	ok(c, reviews)
}

// GET /admin/reviews/:id
func (rc *ReviewController) GetByID(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	review, err := rc.repo.GetByID(id)
	if err != nil {
		failErr(c, err, "review not found")
		return
	}
	ok(c, review)
}

// POST /admin/reviews
func (rc *ReviewController) Create(c *gin.Context) {
	var req reviewPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "invalid request")
		return
	}
	review, errMsg := rc.buildReview(req, false)
	if errMsg != "" {
		fail(c, 400, errMsg)
		return
	}
	if err := rc.repo.Create(review); err != nil {
		failErr(c, err, "failed to create review")
		return
	}
	created(c, review)
}

// PUT /admin/reviews/:id
func (rc *ReviewController) Update(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	var req reviewPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "invalid request")
		return
	}
	updated, errMsg := rc.buildReview(req, false)
	if errMsg != "" {
		fail(c, 400, errMsg)
		return
	}
	review, err := rc.repo.GetByID(id)
	if err != nil {
		failErr(c, err, "review not found")
		return
	}
	review.Content = updated.Content
	review.ContentEt = updated.ContentEt
	review.ContentRu = updated.ContentRu
	review.AuthorName = updated.AuthorName
	review.Rating = updated.Rating
	review.Published = req.Published
	if err := rc.repo.Save(review); err != nil {
		failErr(c, err, "failed to update review")
		return
	}
	ok(c, review)
}

// DELETE /admin/reviews/:id
func (rc *ReviewController) Delete(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	if err := rc.repo.Delete(id); err != nil {
		failErr(c, err, "failed to delete review")
		return
	}
	ok(c, gin.H{"id": id})
}

// buildReview валидирует payload и собирает модель.
// autoPublish=true — публичная отправка: отзыв публикуется сразу.
func (rc *ReviewController) buildReview(req reviewPayload, autoPublish bool) (*models.Review, string) {
	req.AuthorName = strings.TrimSpace(req.AuthorName)
	if req.AuthorName == "" {
		return nil, "author_name is required"
	}
	content := strictPolicy.Sanitize(strings.TrimSpace(req.Content))
	contentEt := strictPolicy.Sanitize(strings.TrimSpace(req.ContentEt))
	contentRu := strictPolicy.Sanitize(strings.TrimSpace(req.ContentRu))
	if content == "" && contentEt == "" && contentRu == "" {
		return nil, "content is required"
	}
	for _, v := range []string{content, contentEt, contentRu} {
		if len([]rune(v)) > maxReviewLength {
			return nil, "content must be at most 1000 characters"
		}
	}
	rating := 5
	if req.Rating != nil {
		rating = *req.Rating
		if rating < 1 || rating > 5 {
			return nil, "rating must be between 1 and 5"
		}
	}
	return &models.Review{
		Content:    content,
		ContentEt:  contentEt,
		ContentRu:  contentRu,
		AuthorName: req.AuthorName,
		Rating:     rating,
		Published:  autoPublish || req.Published,
	}, ""
}

func (rc *ReviewController) toItem(r models.Review, lang string) gin.H {
	return gin.H{
		"id":          r.ID,
		"content":     utils.ResolveLocalized(lang, r.ContentEt, r.ContentRu, r.Content),
		"author_name": r.AuthorName,
		"rating":      r.Rating,
		"created_at":  r.CreatedAt.Format(time.RFC3339),
	}
}
