package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vnkhanh/product-management/config"
	"github.com/vnkhanh/product-management/database"
	"github.com/vnkhanh/product-management/logger"
	"github.com/vnkhanh/product-management/middleware"
	"github.com/vnkhanh/product-management/models"
	"github.com/vnkhanh/product-management/utils"
)

const adminProductPageSize = 10

// AdminStore là các truy vấn của trang quản trị
type AdminStore interface {
	AccountByEmail(ctx context.Context, email string) (*models.Account, error)
	Counts(ctx context.Context) (map[string]int64, error)
	ListProducts(ctx context.Context, q database.ProductQuery) ([]models.Product, int64, error)
	UpdateProductStatus(ctx context.Context, id, status string) error
	SoftDeleteProduct(ctx context.Context, id, accountID string, at time.Time) error
	ListOrders(ctx context.Context) ([]models.Order, error)
	ListRoles(ctx context.Context) ([]models.Role, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)
	ListBrands(ctx context.Context) ([]models.Brand, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ListProductCategoriesAdmin(ctx context.Context) ([]models.ProductCategory, error)
	ListArticleCategoriesAdmin(ctx context.Context) ([]models.ArticleCategory, error)
	ListArticlesAdmin(ctx context.Context) ([]models.Article, error)
}

type AdminController struct {
	store AdminStore
	cfg   *config.Config
	now   func() time.Time
}

func NewAdminController(store AdminStore, cfg *config.Config) *AdminController {
	return &AdminController{store: store, cfg: cfg, now: time.Now}
}

func (ctl *AdminController) path(p string) string {
	return ctl.cfg.PrefixAdmin + p
}

func (ctl *AdminController) page(c *gin.Context, title string) gin.H {
	return gin.H{
		"pageTitle":   title,
		"prefixAdmin": ctl.cfg.PrefixAdmin,
		"account":     middleware.CurrentAccount(c),
		"role":        middleware.CurrentRole(c),
		"flash":       middleware.CurrentFlash(c),
	}
}

func (ctl *AdminController) flash(c *gin.Context, kind, msg string) {
	utils.SetFlash(c, kind, msg, ctl.cfg.SessionMaxAge)
}

// ===== Đăng nhập =====

// GET /auth/login
func (ctl *AdminController) LoginPage(c *gin.Context) {
	data := ctl.page(c, "Đăng nhập")
	data["email"] = ""
	c.HTML(http.StatusOK, "admin/login", data)
}

type loginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// POST /auth/login
func (ctl *AdminController) Login(c *gin.Context) {
	loginPath := ctl.path("/auth/login")

	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		ctl.flash(c, utils.FlashError, "Vui lòng nhập email và mật khẩu!")
		c.Redirect(http.StatusFound, loginPath)
		return
	}

	account, err := ctl.store.AccountByEmail(c.Request.Context(), strings.TrimSpace(form.Email))
	switch {
	case err == nil:
	case isNotFound(err):
		ctl.flash(c, utils.FlashError, "Email không tồn tại!")
		c.Redirect(http.StatusFound, loginPath)
		return
	default:
		renderError(c, err, "load account by email")
		return
	}

	if !utils.CheckPassword(account.Password, form.Password) {
		ctl.flash(c, utils.FlashError, "Sai mật khẩu!")
		c.Redirect(http.StatusFound, loginPath)
		return
	}
	if !account.Active() {
		ctl.flash(c, utils.FlashError, "Tài khoản đang bị khoá!")
		c.Redirect(http.StatusFound, loginPath)
		return
	}

	token, err := utils.GenerateToken(ctl.cfg.SessionSecret, account.ID.Hex(), ctl.cfg.TokenTTL, ctl.now())
	if err != nil {
		renderError(c, err, "generate admin token")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token, int(ctl.cfg.TokenTTL.Seconds()), "/", "", ctl.cfg.IsProduction(), true)
	logger.FromGin(c).Info("admin logged in", zap.String("account_id", account.ID.Hex()))
	c.Redirect(http.StatusFound, ctl.path("/dashboard"))
}

// GET /auth/logout
func (ctl *AdminController) Logout(c *gin.Context) {
	middleware.ClearToken(c)
	c.Redirect(http.StatusFound, ctl.path("/auth/login"))
}

// ===== Tổng quan =====

type dashboardStat struct {
	Label string
	Path  string
	Count int64
}

var dashboardSections = []struct {
	label      string
	path       string
	collection string
}{
	{"Danh mục sản phẩm", "products-category", database.CollectionProductCategories},
	{"Sản phẩm", "products", database.CollectionProducts},
	{"Thương hiệu", "brands", database.CollectionBrands},
	{"Danh mục bài viết", "articles-category", database.CollectionArticleCategories},
	{"Bài viết", "articles", database.CollectionArticles},
	{"Đơn hàng", "orders", database.CollectionOrders},
	{"Nhóm quyền", "roles", database.CollectionRoles},
	{"Tài khoản", "accounts", database.CollectionAccounts},
	{"Khách hàng", "users", database.CollectionUsers},
}

// GET /dashboard
func (ctl *AdminController) Dashboard(c *gin.Context) {
	counts, err := ctl.store.Counts(c.Request.Context())
	if err != nil {
		renderError(c, err, "count collections")
		return
	}

	stats := make([]dashboardStat, 0, len(dashboardSections))
	for _, s := range dashboardSections {
		stats = append(stats, dashboardStat{Label: s.label, Path: s.path, Count: counts[s.collection]})
	}

	data := ctl.page(c, "Tổng quan")
	data["stats"] = stats
	c.HTML(http.StatusOK, "admin/dashboard", data)
}

// ===== Sản phẩm =====

// GET /products
func (ctl *AdminController) Products(c *gin.Context) {
	status := c.Query("status")
	if !models.ValidStatus(status) {
		status = ""
	}
	keyword := c.Query("keyword")
	pagination := utils.NewPagination(c, adminProductPageSize)

	products, total, err := ctl.store.ListProducts(c.Request.Context(), database.ProductQuery{
		Status:  status,
		Keyword: keyword,
		Skip:    pagination.Skip(),
		Limit:   int64(pagination.Limit),
	})
	if err != nil {
		renderError(c, err, "list admin products")
		return
	}
	pagination.SetTotal(total)

	data := ctl.page(c, "Danh sách sản phẩm")
	data["products"] = products
	data["status"] = status
	data["keyword"] = keyword
	data["pagination"] = pagination
	data["offset"] = int(pagination.Skip()) + 1
	data["query"] = c.Request.URL.Query()
	c.HTML(http.StatusOK, "admin/products", data)
}

// PATCH /products/change-status/:status/:id
func (ctl *AdminController) ChangeProductStatus(c *gin.Context) {
	back := utils.BackURL(c, ctl.path("/products"))
	status := c.Param("status")
	if !models.ValidStatus(status) {
		ctl.flash(c, utils.FlashError, "Trạng thái không hợp lệ!")
		c.Redirect(http.StatusFound, back)
		return
	}

	err := ctl.store.UpdateProductStatus(c.Request.Context(), c.Param("id"), status)
	switch {
	case err == nil:
		ctl.flash(c, utils.FlashSuccess, "Cập nhật trạng thái thành công!")
	case isNotFound(err):
		ctl.flash(c, utils.FlashError, "Sản phẩm không tồn tại!")
	default:
		logger.FromGin(c).Error("update product status", zap.Error(err), zap.String("product_id", c.Param("id")))
		ctl.flash(c, utils.FlashError, "Cập nhật trạng thái thất bại!")
	}
	c.Redirect(http.StatusFound, back)
}

// DELETE /products/delete/:id
func (ctl *AdminController) DeleteProduct(c *gin.Context) {
	back := utils.BackURL(c, ctl.path("/products"))
	account := middleware.CurrentAccount(c)
	if account == nil {
		c.Redirect(http.StatusFound, ctl.path("/auth/login"))
		return
	}

	err := ctl.store.SoftDeleteProduct(c.Request.Context(), c.Param("id"), account.ID.Hex(), ctl.now())
	switch {
	case err == nil:
		ctl.flash(c, utils.FlashSuccess, "Đã xoá sản phẩm!")
	case isNotFound(err):
		ctl.flash(c, utils.FlashError, "Sản phẩm không tồn tại!")
	default:
		logger.FromGin(c).Error("delete product", zap.Error(err), zap.String("product_id", c.Param("id")))
		ctl.flash(c, utils.FlashError, "Xoá sản phẩm thất bại!")
	}
	c.Redirect(http.StatusFound, back)
}

// ===== Đơn hàng =====

// GET /orders
func (ctl *AdminController) Orders(c *gin.Context) {
	ctx := c.Request.Context()

	orders, err := ctl.store.ListOrders(ctx)
	if err != nil {
		renderError(c, err, "list orders")
		return
	}
	// cả sản phẩm đã dừng hoạt động vẫn cần tên để hiển thị
	products, _, err := ctl.store.ListProducts(ctx, database.ProductQuery{})
	if err != nil {
		renderError(c, err, "list products for orders")
		return
	}
	titles := make(map[string]string, len(products))
	for _, p := range products {
		titles[p.ID.Hex()] = p.Title
	}

	data := ctl.page(c, "Đơn hàng")
	data["orders"] = orders
	data["productTitles"] = titles
	c.HTML(http.StatusOK, "admin/orders", data)
}
