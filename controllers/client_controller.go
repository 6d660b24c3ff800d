package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vnkhanh/product-management/database"
	"github.com/vnkhanh/product-management/logger"
	"github.com/vnkhanh/product-management/middleware"
	"github.com/vnkhanh/product-management/models"
	"github.com/vnkhanh/product-management/utils"
)

const (
	homeProductLimit = 6
	homeArticleLimit = 3
	productPageSize  = 8
	articlePageSize  = 6
)

// ClientStore là các truy vấn mà giao diện khách cần
type ClientStore interface {
	FeaturedProducts(ctx context.Context, limit int64) ([]models.Product, error)
	NewestProducts(ctx context.Context, limit int64) ([]models.Product, error)
	ListProducts(ctx context.Context, q database.ProductQuery) ([]models.Product, int64, error)
	ProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	ProductCategories(ctx context.Context) ([]models.ProductCategory, error)
	ProductCategoryBySlug(ctx context.Context, slug string) (*models.ProductCategory, error)
	ProductCategoryByID(ctx context.Context, id string) (*models.ProductCategory, error)
	BrandByID(ctx context.Context, id string) (*models.Brand, error)
	ListArticles(ctx context.Context, q database.ArticleQuery) ([]models.Article, int64, error)
	ArticleBySlug(ctx context.Context, slug string) (*models.Article, error)
	ArticleCategories(ctx context.Context) ([]models.ArticleCategory, error)
}

type ClientController struct {
	store ClientStore
}

func NewClientController(store ClientStore) *ClientController {
	return &ClientController{store: store}
}

// page dựng dữ liệu chung cho mọi trang khách (menu danh mục, flash)
func (ctl *ClientController) page(c *gin.Context, title string) gin.H {
	data := gin.H{
		"pageTitle": title,
		"keyword":   "",
		"flash":     middleware.CurrentFlash(c),
	}
	categories, err := ctl.store.ProductCategories(c.Request.Context())
	if err != nil {
		// menu lỗi thì trang vẫn hiển thị
		logger.FromGin(c).Warn("load product categories", zap.Error(err))
	}
	data["productCategories"] = categories
	return data
}

// GET /
func (ctl *ClientController) Home(c *gin.Context) {
	ctx := c.Request.Context()

	featured, err := ctl.store.FeaturedProducts(ctx, homeProductLimit)
	if err != nil {
		renderError(c, err, "load featured products")
		return
	}
	newest, err := ctl.store.NewestProducts(ctx, homeProductLimit)
	if err != nil {
		renderError(c, err, "load newest products")
		return
	}
	articles, _, err := ctl.store.ListArticles(ctx, database.ArticleQuery{Limit: homeArticleLimit})
	if err != nil {
		renderError(c, err, "load articles")
		return
	}

	data := ctl.page(c, "Trang chủ")
	data["featuredProducts"] = featured
	data["newProducts"] = newest
	data["articles"] = articles
	c.HTML(http.StatusOK, "client/home", data)
}

// GET /products
func (ctl *ClientController) Products(c *gin.Context) {
	ctl.renderProducts(c, "Danh sách sản phẩm", database.ProductQuery{})
}

// GET /products/:slugCategory
func (ctl *ClientController) ProductsByCategory(c *gin.Context) {
	category, err := ctl.store.ProductCategoryBySlug(c.Request.Context(), c.Param("slugCategory"))
	if err != nil {
		renderError(c, err, "load product category")
		return
	}
	ctl.renderProducts(c, category.Title, database.ProductQuery{CategoryID: category.ID.Hex()})
}

// GET /search?keyword=
func (ctl *ClientController) Search(c *gin.Context) {
	ctl.renderProducts(c, "Kết quả tìm kiếm", database.ProductQuery{})
}

func (ctl *ClientController) renderProducts(c *gin.Context, title string, q database.ProductQuery) {
	pagination := utils.NewPagination(c, productPageSize)
	q.Status = models.StatusActive
	q.Keyword = c.Query("keyword")
	q.Skip = pagination.Skip()
	q.Limit = int64(pagination.Limit)

	products, total, err := ctl.store.ListProducts(c.Request.Context(), q)
	if err != nil {
		renderError(c, err, "list products")
		return
	}
	pagination.SetTotal(total)

	data := ctl.page(c, title)
	data["keyword"] = q.Keyword
	data["products"] = products
	data["pagination"] = pagination
	data["query"] = c.Request.URL.Query()
	c.HTML(http.StatusOK, "client/products", data)
}

// GET /products/detail/:slug
func (ctl *ClientController) ProductDetail(c *gin.Context) {
	ctx := c.Request.Context()

	product, err := ctl.store.ProductBySlug(ctx, c.Param("slug"))
	if err != nil {
		renderError(c, err, "load product")
		return
	}

	data := ctl.page(c, product.Title)
	data["product"] = product

	// Danh mục hoặc thương hiệu đã bị xoá thì bỏ qua, không làm hỏng trang
	if category, err := ctl.store.ProductCategoryByID(ctx, product.CategoryID); err == nil {
		data["category"] = category
	} else if !errors.Is(err, database.ErrNotFound) {
		renderError(c, err, "load product category")
		return
	}
	if brand, err := ctl.store.BrandByID(ctx, product.BrandID); err == nil {
		data["brand"] = brand
	} else if !errors.Is(err, database.ErrNotFound) {
		renderError(c, err, "load brand")
		return
	}

	c.HTML(http.StatusOK, "client/product-detail", data)
}

// GET /articles
func (ctl *ClientController) Articles(c *gin.Context) {
	ctx := c.Request.Context()
	pagination := utils.NewPagination(c, articlePageSize)

	articles, total, err := ctl.store.ListArticles(ctx, database.ArticleQuery{
		Skip:  pagination.Skip(),
		Limit: int64(pagination.Limit),
	})
	if err != nil {
		renderError(c, err, "list articles")
		return
	}
	pagination.SetTotal(total)

	categories, err := ctl.store.ArticleCategories(ctx)
	if err != nil {
		renderError(c, err, "list article categories")
		return
	}

	data := ctl.page(c, "Bài viết")
	data["articles"] = articles
	data["articleCategories"] = categories
	data["pagination"] = pagination
	data["query"] = c.Request.URL.Query()
	c.HTML(http.StatusOK, "client/articles", data)
}

// GET /articles/:slug
func (ctl *ClientController) ArticleDetail(c *gin.Context) {
	article, err := ctl.store.ArticleBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		renderError(c, err, "load article")
		return
	}
	data := ctl.page(c, article.Title)
	data["article"] = article
	c.HTML(http.StatusOK, "client/article-detail", data)
}
