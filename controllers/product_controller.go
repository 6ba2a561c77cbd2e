package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Sh4dowyy/podoloog-sub000/models"
	"github.com/Sh4dowyy/podoloog-sub000/repository"
	"github.com/Sh4dowyy/podoloog-sub000/utils"
)

type brandPayload struct {
	Name          string `json:"name"`
	NameEt        string `json:"name_et"`
	NameRu        string `json:"name_ru"`
	Description   string `json:"description"`
	DescriptionEt string `json:"description_et"`
	DescriptionRu string `json:"description_ru"`
	Published     bool   `json:"published"`
}

type brandProductPayload struct {
	BrandID       uint   `json:"brand_id"`
	Name          string `json:"name"`
	NameEt        string `json:"name_et"`
	NameRu        string `json:"name_ru"`
	Description   string `json:"description"`
	DescriptionEt string `json:"description_et"`
	DescriptionRu string `json:"description_ru"`
	Category      string `json:"category"`
	ImageURL      string `json:"image_url"`
	Published     bool   `json:"published"`
}

// ProductController обслуживает бренды и их товары.
type ProductController struct {
	brands   *repository.Repository[models.Product]
	products *repository.Repository[models.BrandProduct]
}

func NewProductController() *ProductController {
	return &ProductController{
		brands: repository.New[models.Product](repository.Config{PublishColumn: "published"}),
		// сортировка каталога — по эстонскому имени
		products: repository.New[models.BrandProduct](repository.Config{
			PublishColumn: "published",
			DefaultOrder:  "name_et ASC",
		}),
	}
}

// GET /brands — публичные бренды с их опубликованными товарами.
func (pc *ProductController) ListPublishedBrands(c *gin.Context) {
	lang := getLang(c)
	brands, err := pc.brands.ListPublished()
	if err != nil {
		utils.LogError(err, "brands list")
		brands = nil
	}
	products, err := pc.products.ListPublished()
	if err != nil {
		utils.LogError(err, "brand products list")
		products = nil
	}
	byBrand := make(map[uint][]gin.H, len(brands))
	for _, p := range products {
		byBrand[p.BrandID] = append(byBrand[p.BrandID], pc.toProductItem(p, lang))
	}
	items := make([]gin.H, 0, len(brands))
	for _, b := range brands {
		item := pc.toBrandItem(b, lang)
		prods := byBrand[b.ID]
		if prods == nil {
			prods = []gin.H{}
		}
		item["products"] = prods
		items = append(items, item)
	}
	ok(c, items)
}

// GET /products?category= — публичный каталог товаров, опционально по категории.
func (pc *ProductController) ListPublishedProducts(c *gin.Context) {
	lang := getLang(c)
	category := c.Query("category")
	if category != "" && !models.ValidProductCategory(category) {
		fail(c, 400, "invalid category")
		return
	}
	products, err := pc.products.ListPublished()
	if err != nil {
		utils.LogError(err, "products list")
		products = nil
	}
	items := make([]gin.H, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		items = append(items, pc.toProductItem(p, lang))
	}
	ok(c, items)
}

// ---- бренды (админка) ----

func (pc *ProductController) ListBrands(c *gin.Context) {
	brands, err := pc.brands.ListAll()
	if err != nil {
		failErr(c, err, "failed to fetch brands")
		return
	}
	ok(c, brands)
}

func (pc *ProductController) GetBrandByID(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	brand, err := pc.brands.GetByID(id)
	if err != nil {
		failErr(c, err, "brand not found")
		return
	}
	ok(c, brand)
}

func (pc *ProductController) CreateBrand(c *gin.Context) {
	var req brandPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "invalid request")
		return
	}
	if req.NameEt == "" && req.NameRu == "" && req.Name == "" {
		fail(c, 400, "name is required")
		return
	}
	brand := models.Product{
		Name:          req.Name,
		NameEt:        req.NameEt,
		NameRu:        req.NameRu,
		Description:   req.Description,
		DescriptionEt: req.DescriptionEt,
		DescriptionRu: req.DescriptionRu,
		Published:     req.Published,
	}
	if err := pc.brands.Create(&brand); err != nil {
		failErr(c, err, "failed to create brand")
		return
	}
	created(c, brand)
}

func (pc *ProductController) UpdateBrand(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	var req brandPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "invalid request")
		return
	}
	brand, err := pc.brands.GetByID(id)
	if err != nil {
		failErr(c, err, "brand not found")
		return
	}
	brand.Name = req.Name
	brand.NameEt = req.NameEt
	brand.NameRu = req.NameRu
	brand.Description = req.Description
	brand.DescriptionEt = req.DescriptionEt
	brand.DescriptionRu = req.DescriptionRu
	brand.Published = req.Published
	if err := pc.brands.Save(brand); err != nil {
		failErr(c, err, "failed to update brand")
		return
	}
	ok(c, brand)
}

// DeleteBrand удаляет бренд. Его товары не каскадируются — осиротевшие
// товары скрываются из публичной выдачи на уровне группировки по брендам.
func (pc *ProductController) DeleteBrand(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	if err := pc.brands.Delete(id); err != nil {
		failErr(c, err, "failed to delete brand")
		return
	}
	ok(c, gin.H{"id": id})
}

// ---- товары брендов (админка) ----

func (pc *ProductController) ListProducts(c *gin.Context) {
	products, err := pc.products.ListAll()
	if err != nil {
		failErr(c, err, "failed to fetch products")
		return
	}
	ok(c, products)
}

func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	product, err := pc.products.GetByID(id)
	if err != nil {
		failErr(c, err, "product not found")
		return
	}
	ok(c, product)
}

// validateBrandProduct проверяет payload и существование бренда.
func (pc *ProductController) validateBrandProduct(req brandProductPayload) string {
	if req.NameEt == "" && req.NameRu == "" && req.Name == "" {
		return "name is required"
	}
	if req.Category != "" && !models.ValidProductCategory(req.Category) {
		return "invalid category"
	}
	if req.BrandID == 0 {
		return "brand_id is required"
	}
	if _, err := pc.brands.GetByID(req.BrandID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "brand not found"
		}
		return "failed to verify brand"
	}
	return ""
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req brandProductPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "invalid request")
		return
	}
	if msg := pc.validateBrandProduct(req); msg != "" {
		fail(c, 400, msg)
		return
	}
	if req.Category == "" {
		req.Category = models.ProductCategoryOther
	}
	product := models.BrandProduct{
		BrandID:       req.BrandID,
		Name:          req.Name,
		NameEt:        req.NameEt,
		NameRu:        req.NameRu,
		Description:   req.Description,
		DescriptionEt: req.DescriptionEt,
		DescriptionRu: req.DescriptionRu,
		Category:      req.Category,
		ImageURL:      req.ImageURL,
		Published:     req.Published,
	}
	if err := pc.products.Create(&product); err != nil {
		failErr(c, err, "failed to create product")
		return
	}
	created(c, product)
}

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	var req brandProductPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "invalid request")
		return
	}
	if msg := pc.validateBrandProduct(req); msg != "" {
		fail(c, 400, msg)
		return
	}
	product, err := pc.products.GetByID(id)
	if err != nil {
		failErr(c, err, "product not found")
		return
	}
	if product.ImageURL != "" && product.ImageURL != req.ImageURL {
		utils.RemoveImage(product.ImageURL)
	}
	product.BrandID = req.BrandID
	product.Name = req.Name
	product.NameEt = req.NameEt
	product.NameRu = req.NameRu
	product.Description = req.Description
	product.DescriptionEt = req.DescriptionEt
	product.DescriptionRu = req.DescriptionRu
	if req.Category != "" {
		product.Category = req.Category
	}
	product.ImageURL = req.ImageURL
	product.Published = req.Published
	if err := pc.products.Save(product); err != nil {
		failErr(c, err, "failed to update product")
		return
	}
	ok(c, product)
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, okID := parseID(c)
	if !okID {
		return
	}
	product, err := pc.products.GetByID(id)
	if err != nil {
		failErr(c, err, "product not found")
		return
	}
	if err := pc.products.Delete(id); err != nil {
		failErr(c, err, "failed to delete product")
		return
	}
	if product.ImageURL != "" {
		utils.RemoveImage(product.ImageURL)
	}
	ok(c, gin.H{"id": id})
}

func (pc *ProductController) toBrandItem(b models.Product, lang string) gin.H {
	return gin.H{
		"id":          b.ID,
		"name":        utils.ResolveLocalized(lang, b.NameEt, b.NameRu, b.Name),
		"description": utils.ResolveLocalized(lang, b.DescriptionEt, b.DescriptionRu, b.Description),
	}
}

func (pc *ProductController) toProductItem(p models.BrandProduct, lang string) gin.H {
	return gin.H{
		"id":          p.ID,
		"brand_id":    p.BrandID,
		"name":        utils.ResolveLocalized(lang, p.NameEt, p.NameRu, p.Name),
		"description": utils.ResolveLocalized(lang, p.DescriptionEt, p.DescriptionRu, p.Description),
		"category":    p.Category,
		"image_url":   p.ImageURL,
	}
}
