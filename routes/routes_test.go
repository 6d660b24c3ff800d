package routes_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/vnkhanh/product-management/config"
	"github.com/vnkhanh/product-management/database/databasetest"
	"github.com/vnkhanh/product-management/metrics"
	"github.com/vnkhanh/product-management/middleware"
	"github.com/vnkhanh/product-management/models"
	"github.com/vnkhanh/product-management/routes"
	"github.com/vnkhanh/product-management/utils"
)

type server struct {
	handler http.Handler
	store   *databasetest.Fake
	cfg     *config.Config
}

func newServer(c *qt.C) *server {
	gin.SetMode(gin.TestMode)

	store, err := databasetest.Seeded(context.Background())
	c.Assert(err, qt.IsNil)

	cfg := &config.Config{
		ServiceName:   "product-management-test",
		Env:           "test",
		Port:          "0",
		PrefixAdmin:   "/admin",
		SessionSecret: "test-secret",
		SessionMaxAge: time.Minute,
		TokenTTL:      time.Hour,
		CORSOrigins:   []string{"http://localhost:5000"},
		Mongo:         config.MongoConfig{Timeout: time.Second},
	}
	engine, err := routes.SetupRouter(routes.Deps{
		Config:  cfg,
		Logger:  zap.NewNop(),
		Store:   store,
		Metrics: metrics.NewHTTPMetrics(cfg.ServiceName, prometheus.NewRegistry()),
	})
	c.Assert(err, qt.IsNil)

	return &server{handler: middleware.MethodOverride(engine), store: store, cfg: cfg}
}

func (s *server) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func (s *server) get(target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	return s.do(req)
}

func (s *server) accountID(c *qt.C, email string) string {
	account, err := s.store.AccountByEmail(context.Background(), email)
	c.Assert(err, qt.IsNil)
	return account.ID.Hex()
}

func (s *server) tokenFor(c *qt.C, email string) *http.Cookie {
	token, err := utils.GenerateToken(s.cfg.SessionSecret, s.accountID(c, email), time.Hour, time.Now())
	c.Assert(err, qt.IsNil)
	return &http.Cookie{Name: middleware.TokenCookie, Value: token}
}

func (s *server) productBySlug(c *qt.C, slug string) models.Product {
	for _, p := range s.store.Products {
		if p.Slug == slug {
			return p
		}
	}
	c.Fatalf("product %q not seeded", slug)
	return models.Product{}
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestClientPages(t *testing.T) {
	c := qt.New(t)
	s := newServer(c)

	tests := []struct {
		name     string
		target   string
		status   int
		contains []string
		excludes []string
	}{{
		name:     "home",
		target:   "/",
		status:   http.StatusOK,
		contains: []string{"<title>Trang chủ</title>", "iPhone 15 Pro Max", "Nike Air Max 90", "Review Samsung Galaxy S24 Ultra"},
	}, {
		name:     "product list",
		target:   "/products",
		status:   http.StatusOK,
		contains: []string{"Danh sách sản phẩm", "MacBook Pro 16 inch M3 Max", "Sony WH-1000XM5"},
	}, {
		name:     "category",
		target:   "/products/" + url.PathEscape("điện-thoại"),
		status:   http.StatusOK,
		contains: []string{"<title>Điện thoại</title>", "iPhone 15 Pro Max", "Samsung Galaxy S24 Ultra"},
		excludes: []string{"Dell XPS 15"},
	}, {
		name:     "unknown category",
		target:   "/products/khong-ton-tai",
		status:   http.StatusNotFound,
		contains: []string{"404 NOT FOUND"},
	}, {
		name:     "product detail",
		target:   "/products/detail/iphone-15-pro-max",
		status:   http.StatusOK,
		contains: []string{"iPhone 15 Pro Max", "Thương hiệu: Apple", "Điện thoại"},
	}, {
		name:     "unknown product",
		target:   "/products/detail/iphone-1",
		status:   http.StatusNotFound,
		contains: []string{"404 NOT FOUND"},
	}, {
		name:     "search",
		target:   "/search?keyword=nike",
		status:   http.StatusOK,
		contains: []string{"Nike Air Max 90", "Kết quả cho"},
		excludes: []string{"Adidas Ultraboost 23"},
	}, {
		name:     "articles",
		target:   "/articles",
		status:   http.StatusOK,
		contains: []string{"10 mẹo giúp pin laptop kéo dài hơn", "Mẹo và thủ thuật"},
	}, {
		name:     "article detail",
		target:   "/articles/" + url.PathEscape(utils.MakeSlug("Review Samsung Galaxy S24 Ultra")),
		status:   http.StatusOK,
		contains: []string{"<h1>Review Samsung Galaxy S24 Ultra</h1>"},
	}, {
		name:     "catch all",
		target:   "/khong/co/trang/nay",
		status:   http.StatusNotFound,
		contains: []string{"<title>404 NOT FOUND</title>"},
	}}

	for _, test := range tests {
		c.Run(test.name, func(c *qt.C) {
			w := s.get(test.target)
			c.Assert(w.Code, qt.Equals, test.status)
			body := w.Body.String()
			for _, want := range test.contains {
				c.Assert(body, qt.Contains, want)
			}
			for _, unwanted := range test.excludes {
				c.Assert(body, qt.Not(qt.Contains), unwanted)
			}
			c.Assert(w.Header().Get(middleware.RequestIDHeader), qt.Not(qt.Equals), "")
		})
	}
}

func TestClientPagesDatabaseDown(t *testing.T) {
	c := qt.New(t)
	s := newServer(c)
	s.store.Err = errors.New("server selection timeout")

	w := s.get("/products")
	c.Assert(w.Code, qt.Equals, http.StatusInternalServerError)
}

func TestHealth(t *testing.T) {
	c := qt.New(t)
	s := newServer(c)

	w := s.get("/health")
	c.Assert(w.Code, qt.Equals, http.StatusOK)
	c.Assert(w.Body.String(), qt.Contains, `"status":"ok"`)

	s.store.Err = errors.New("no reachable servers")
	w = s.get("/health")
	c.Assert(w.Code, qt.Equals, http.StatusInternalServerError)
	c.Assert(w.Body.String(), qt.Contains, `"status":"degraded"`)
}

func TestMetricsAndStatic(t *testing.T) {
	c := qt.New(t)
	s := newServer(c)

	c.Assert(s.get("/").Code, qt.Equals, http.StatusOK)

	w := s.get("/metrics")
	c.Assert(w.Code, qt.Equals, http.StatusOK)
	c.Assert(w.Body.String(), qt.Contains, "http_requests_total")

	w = s.get("/static/css/style.css")
	c.Assert(w.Code, qt.Equals, http.StatusOK)
	c.Assert(w.Body.String(), qt.Contains, ".product-list")
}

func TestAdminRequiresLogin(t *testing.T) {
	c := qt.New(t)
	s := newServer(c)

	for _, target := range []string{"/admin/dashboard", "/admin/products", "/admin/orders", "/admin/users"} {
		w := s.get(target)
		c.Assert(w.Code, qt.Equals, http.StatusFound, qt.Commentf(target))
		c.Assert(w.Header().Get("Location"), qt.Equals, "/admin/auth/login")
	}

	w := s.get("/admin/auth/login")
	c.Assert(w.Code, qt.Equals, http.StatusOK)
	c.Assert(w.Body.String(), qt.Contains, `action="/admin/auth/login"`)
}

func TestAdminLogin(t *testing.T) {
	s := newServer(qt.New(t))

	tests := []struct {
		name     string
		email    string
		password string
		location string
		flash    string
	}{
		{"missing fields", "", "", "/admin/auth/login", "Vui lòng nhập email và mật khẩu!"},
		{"unknown email", "nobody@example.com", "123456", "/admin/auth/login", "Email không tồn tại!"},
		{"wrong password", "admin@example.com", "654321", "/admin/auth/login", "Sai mật khẩu!"},
		{"success", "admin@example.com", "123456", "/admin/dashboard", ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := qt.New(t)
			form := url.Values{"email": {test.email}, "password": {test.password}}
			req := httptest.NewRequest(http.MethodPost, "/admin/auth/login", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := s.do(req)

			c.Assert(w.Code, qt.Equals, http.StatusFound)
			c.Assert(w.Header().Get("Location"), qt.Equals, test.location)

			token := findCookie(w, middleware.TokenCookie)
			if test.flash != "" {
				flash := findCookie(w, "flash")
				c.Assert(flash, qt.IsNotNil)
				value, err := url.QueryUnescape(flash.Value)
				c.Assert(err, qt.IsNil)
				c.Assert(value, qt.Equals, utils.FlashError+"|"+test.flash)
				c.Assert(token, qt.IsNil)
				return
			}

			c.Assert(token, qt.IsNotNil)
			claims, err := utils.VerifyToken(s.cfg.SessionSecret, token.Value)
			c.Assert(err, qt.IsNil)
			c.Assert(claims.AccountID, qt.Equals, s.accountID(c, "admin@example.com"))

			w = s.get("/admin/dashboard", token)
			c.Assert(w.Code, qt.Equals, http.StatusOK)
			c.Assert(w.Body.String(), qt.Contains, "Nguyễn Bình")
		})
	}
}

func TestAdminLoginInactiveAccount(t *testing.T) {
	c := qt.New(t)
	s := newServer(c)
	s.store.Accounts[2].Status = models.StatusInactive

	form := url.Values{"email": {"contributor@example.com"}, "password": {"123456"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := s.do(req)

	c.Assert(w.Header().Get("Location"), qt.Equals, "/admin/auth/login")
	c.Assert(findCookie(w, middleware.TokenCookie), qt.IsNil)
}

func TestAdminLogout(t *testing.T) {
	c := qt.New(t)
	s := newServer(c)

	w := s.get("/admin/auth/logout", s.tokenFor(c, "admin@example.com"))
	c.Assert(w.Code, qt.Equals, http.StatusFound)
	c.Assert(w.Header().Get("Location"), qt.Equals, "/admin/auth/login")
	cleared := findCookie(w, middleware.TokenCookie)
	c.Assert(cleared, qt.IsNotNil)
	c.Assert(cleared.MaxAge < 0, qt.IsTrue)
}

func TestAdminPages(t *testing.T) {
	c := qt.New(t)
	s := newServer(c)
	token := s.tokenFor(c, "editor@example.com")

	tests := []struct {
		target   string
		contains []string
	}{
		{"/admin/dashboard", []string{"Tổng quan", `href="/admin/products"`}},
		{"/admin/products", []string{"Danh sách sản phẩm", "Dell XPS 15", "change-status/inactive/"}},
		{"/admin/products?status=inactive", []string{"Không có sản phẩm."}},
		{"/admin/products-category", []string{"Danh mục sản phẩm", "máy-tính-xách-tay"}},
		{"/admin/brands", []string{"Samsung", "Tập đoàn điện tử Hàn Quốc"}},
		{"/admin/articles-category", []string{"Review sản phẩm"}},
		{"/admin/articles", []string{"Hướng dẫn sử dụng iPhone 15 Pro Max", "Hướng dẫn sử dụng"}},
		{"/admin/orders", []string{"Lê Văn A", "iPhone 15 Pro Max × 1"}},
		{"/admin/roles", []string{"Contributor", "view, create, edit"}},
		{"/admin/accounts", []string{"editor@example.com", "Editor"}},
		{"/admin/users", []string{"Hoạt động"}},
	}
	for _, test := range tests {
		c.Run(test.target, func(c *qt.C) {
			w := s.get(test.target, token)
			c.Assert(w.Code, qt.Equals, http.StatusOK)
			for _, want := range test.contains {
				c.Assert(w.Body.String(), qt.Contains, want)
			}
		})
	}

	// editor không có quyền delete nên không thấy nút xoá
	w := s.get("/admin/products", token)
	c.Assert(w.Body.String(), qt.Not(qt.Contains), "_method=DELETE")
}

func TestAdminChangeStatus(t *testing.T) {
	c := qt.New(t)
	s := newServer(c)
	product := s.productBySlug(c, "iphone-15-pro-max")

	req := httptest.NewRequest(http.MethodPost,
		"/admin/products/change-status/inactive/"+product.ID.Hex()+"?_method=PATCH", nil)
	req.Header.Set("Accept", "text/html")
	req.Header.Set("Referer", "/admin/products?page=1")
	req.AddCookie(s.tokenFor(c, "contributor@example.com"))
	w := s.do(req)

	c.Assert(w.Code, qt.Equals, http.StatusFound)
	c.Assert(w.Header().Get("Location"), qt.Equals, "/admin/products?page=1")
	updated, ok := s.store.Product(product.ID.Hex())
	c.Assert(ok, qt.IsTrue)
	c.Assert(updated.Status, qt.Equals, models.StatusInactive)

	// sản phẩm dừng hoạt động không còn hiển thị cho khách
	c.Assert(s.get("/products/detail/iphone-15-pro-max").Code, qt.Equals, http.StatusNotFound)

	// trạng thái không hợp lệ không làm thay đổi dữ liệu
	req = httptest.NewRequest(http.MethodPost,
		"/admin/products/change-status/archived/"+product.ID.Hex()+"?_method=PATCH", nil)
	req.AddCookie(s.tokenFor(c, "contributor@example.com"))
	req.Header.Set("Accept", "text/html")
	w = s.do(req)
	c.Assert(w.Header().Get("Location"), qt.Equals, "/admin/products")
	updated, _ = s.store.Product(product.ID.Hex())
	c.Assert(updated.Status, qt.Equals, models.StatusInactive)
}

func TestAdminDeleteProduct(t *testing.T) {
	c := qt.New(t)
	s := newServer(c)
	product := s.productBySlug(c, "dell-xps-15")
	target := "/admin/products/delete/" + product.ID.Hex() + "?_method=DELETE"

	// contributor không có quyền delete
	req := httptest.NewRequest(http.MethodPost, target, nil)
	req.Header.Set("Accept", "text/html")
	req.AddCookie(s.tokenFor(c, "contributor@example.com"))
	w := s.do(req)
	c.Assert(w.Code, qt.Equals, http.StatusFound)
	stored, _ := s.store.Product(product.ID.Hex())
	c.Assert(stored.Deleted, qt.IsFalse)

	req = httptest.NewRequest(http.MethodPost, target, nil)
	req.Header.Set("Accept", "text/html")
	req.AddCookie(s.tokenFor(c, "admin@example.com"))
	w = s.do(req)
	c.Assert(w.Code, qt.Equals, http.StatusFound)
	c.Assert(w.Header().Get("Location"), qt.Equals, "/admin/products")

	stored, _ = s.store.Product(product.ID.Hex())
	c.Assert(stored.Deleted, qt.IsTrue)
	c.Assert(stored.DeletedBy, qt.IsNotNil)
	c.Assert(stored.DeletedBy.AccountID, qt.Equals, s.accountID(c, "admin@example.com"))

	// xoá lần hai báo không tồn tại
	req = httptest.NewRequest(http.MethodPost, target, nil)
	req.Header.Set("Accept", "text/html")
	req.AddCookie(s.tokenFor(c, "admin@example.com"))
	w = s.do(req)
	flash := findCookie(w, "flash")
	c.Assert(flash, qt.IsNotNil)
	value, _ := url.QueryUnescape(flash.Value)
	c.Assert(value, qt.Equals, utils.FlashError+"|Sản phẩm không tồn tại!")
}
