package routes

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vnkhanh/product-management/config"
	"github.com/vnkhanh/product-management/controllers"
	"github.com/vnkhanh/product-management/logger"
	"github.com/vnkhanh/product-management/metrics"
	"github.com/vnkhanh/product-management/middleware"
	"github.com/vnkhanh/product-management/models"
	"github.com/vnkhanh/product-management/views"
)

// Store gom mọi truy vấn mà các route cần; *database.Repository thoả mãn
type Store interface {
	controllers.ClientStore
	controllers.AdminStore
	middleware.AccountLoader
	controllers.Pinger
}

type Deps struct {
	Config  *config.Config
	Logger  *zap.Logger
	Store   Store
	Metrics *metrics.HTTPMetrics
}

// SetupRouter dựng engine với cây route khách, cây route admin và các route hệ thống
func SetupRouter(deps Deps) (*gin.Engine, error) {
	cfg := deps.Config

	tmpl, err := views.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		logger.Middleware(deps.Logger),
	)
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
	}
	//Bật CORS
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	r.Use(middleware.LoadFlash())

	health := controllers.NewHealthController(deps.Store, cfg.Mongo.Timeout)
	r.GET("/health", health.Check)
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}
	r.StaticFS("/static", views.Static())

	setupClientRoutes(r, controllers.NewClientController(deps.Store))
	setupAdminRoutes(r, cfg, deps.Store, controllers.NewAdminController(deps.Store, cfg))

	r.NoRoute(controllers.NotFound)
	return r, nil
}

// corsConfig: không cấu hình origin thì mở cho mọi origin nhưng không gửi cookie
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}

func setupClientRoutes(r *gin.Engine, client *controllers.ClientController) {
	r.GET("/", client.Home)

	products := r.Group("/products")
	{
		products.GET("", client.Products)
		products.GET("/detail/:slug", client.ProductDetail)
		products.GET("/:slugCategory", client.ProductsByCategory)
	}

	articles := r.Group("/articles")
	{
		articles.GET("", client.Articles)
		articles.GET("/:slug", client.ArticleDetail)
	}

	r.GET("/search", client.Search)
}

func setupAdminRoutes(r *gin.Engine, cfg *config.Config, accounts middleware.AccountLoader, admin *controllers.AdminController) {
	prefix := cfg.PrefixAdmin

	auth := r.Group(prefix + "/auth")
	{
		auth.GET("/login", admin.LoginPage)
		auth.POST("/login", admin.Login)
		auth.GET("/logout", admin.Logout)
	}

	protected := r.Group(prefix)
	protected.Use(middleware.RequireAuth(cfg.SessionSecret, prefix+"/auth/login", accounts))
	{
		protected.GET("/dashboard", admin.Dashboard)

		//Quản lý sản phẩm
		protected.GET("/products", admin.Products)
		protected.PATCH("/products/change-status/:status/:id",
			middleware.RequirePermission(models.PermissionEdit, prefix+"/products", cfg.SessionMaxAge),
			admin.ChangeProductStatus)
		protected.DELETE("/products/delete/:id",
			middleware.RequirePermission(models.PermissionDelete, prefix+"/products", cfg.SessionMaxAge),
			admin.DeleteProduct)

		protected.GET("/products-category", admin.ProductCategories)
		protected.GET("/brands", admin.Brands)
		protected.GET("/articles-category", admin.ArticleCategories)
		protected.GET("/articles", admin.Articles)
		protected.GET("/orders", admin.Orders)
		protected.GET("/roles", admin.Roles)
		protected.GET("/accounts", admin.Accounts)
		protected.GET("/users", admin.Users)
	}
}
