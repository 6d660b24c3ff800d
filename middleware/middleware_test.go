package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vnkhanh/product-management/database"
	"github.com/vnkhanh/product-management/logger"
	"github.com/vnkhanh/product-management/middleware"
	"github.com/vnkhanh/product-management/models"
	"github.com/vnkhanh/product-management/utils"
)

const secret = "test-secret"

type fakeAccounts struct {
	accounts map[string]*models.Account
	roles    map[string]*models.Role
}

func (f *fakeAccounts) AccountByID(_ context.Context, id string) (*models.Account, error) {
	if a, ok := f.accounts[id]; ok {
		return a, nil
	}
	return nil, database.ErrNotFound
}

func (f *fakeAccounts) RoleByID(_ context.Context, id string) (*models.Role, error) {
	if r, ok := f.roles[id]; ok {
		return r, nil
	}
	return nil, database.ErrNotFound
}

func newFixture() (*fakeAccounts, *models.Account) {
	roleID := primitive.NewObjectID()
	account := &models.Account{
		ID:       primitive.NewObjectID(),
		FullName: "Admin",
		RoleID:   roleID.Hex(),
		Status:   models.StatusActive,
	}
	return &fakeAccounts{
		accounts: map[string]*models.Account{account.ID.Hex(): account},
		roles: map[string]*models.Role{
			roleID.Hex(): {ID: roleID, Title: "Editor", Permissions: []string{models.PermissionView, models.PermissionEdit}},
		},
	}, account
}

func tokenFor(c *qt.C, accountID string) *http.Cookie {
	token, err := utils.GenerateToken(secret, accountID, time.Hour, time.Now())
	c.Assert(err, qt.IsNil)
	return &http.Cookie{Name: middleware.TokenCookie, Value: token}
}

func newEngine(accounts middleware.AccountLoader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	admin := r.Group("/admin", middleware.RequireAuth(secret, "/admin/auth/login", accounts))
	admin.GET("/dashboard", func(c *gin.Context) {
		account := middleware.CurrentAccount(c)
		title := "none"
		if role := middleware.CurrentRole(c); role != nil {
			title = role.Title
		}
		c.String(http.StatusOK, account.FullName+"/"+title)
	})
	admin.PATCH("/products/:id",
		middleware.RequirePermission(models.PermissionEdit, "/admin/products", time.Minute),
		func(c *gin.Context) { c.String(http.StatusOK, "edited") })
	admin.DELETE("/products/:id",
		middleware.RequirePermission(models.PermissionDelete, "/admin/products", time.Minute),
		func(c *gin.Context) { c.String(http.StatusOK, "deleted") })
	return r
}

func TestRequireAuth(t *testing.T) {
	accounts, account := newFixture()
	locked := &models.Account{ID: primitive.NewObjectID(), Status: models.StatusInactive}
	accounts.accounts[locked.ID.Hex()] = locked
	orphan := &models.Account{ID: primitive.NewObjectID(), FullName: "Orphan", RoleID: primitive.NewObjectID().Hex(), Status: models.StatusActive}
	accounts.accounts[orphan.ID.Hex()] = orphan

	tests := []struct {
		name     string
		cookie   func(c *qt.C) *http.Cookie
		status   int
		body     string
		location string
	}{{
		name:     "no cookie",
		cookie:   func(*qt.C) *http.Cookie { return nil },
		status:   http.StatusFound,
		location: "/admin/auth/login",
	}, {
		name:     "garbage token",
		cookie:   func(*qt.C) *http.Cookie { return &http.Cookie{Name: middleware.TokenCookie, Value: "abc.def.ghi"} },
		status:   http.StatusFound,
		location: "/admin/auth/login",
	}, {
		name:     "unknown account",
		cookie:   func(c *qt.C) *http.Cookie { return tokenFor(c, primitive.NewObjectID().Hex()) },
		status:   http.StatusFound,
		location: "/admin/auth/login",
	}, {
		name:     "inactive account",
		cookie:   func(c *qt.C) *http.Cookie { return tokenFor(c, locked.ID.Hex()) },
		status:   http.StatusFound,
		location: "/admin/auth/login",
	}, {
		name:   "valid token",
		cookie: func(c *qt.C) *http.Cookie { return tokenFor(c, account.ID.Hex()) },
		status: http.StatusOK,
		body:   "Admin/Editor",
	}, {
		name:   "role removed",
		cookie: func(c *qt.C) *http.Cookie { return tokenFor(c, orphan.ID.Hex()) },
		status: http.StatusOK,
		body:   "Orphan/none",
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := qt.New(t)
			req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
			if cookie := test.cookie(c); cookie != nil {
				req.AddCookie(cookie)
			}
			w := httptest.NewRecorder()
			newEngine(accounts).ServeHTTP(w, req)

			c.Assert(w.Code, qt.Equals, test.status)
			if test.location != "" {
				c.Assert(w.Header().Get("Location"), qt.Equals, test.location)
			}
			if test.body != "" {
				c.Assert(w.Body.String(), qt.Equals, test.body)
			}
		})
	}
}

func TestRequirePermission(t *testing.T) {
	c := qt.New(t)
	accounts, account := newFixture()
	engine := newEngine(accounts)

	// có quyền edit
	req := httptest.NewRequest(http.MethodPatch, "/admin/products/1", nil)
	req.AddCookie(tokenFor(c, account.ID.Hex()))
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	c.Assert(w.Code, qt.Equals, http.StatusOK)
	c.Assert(w.Body.String(), qt.Equals, "edited")

	// không có quyền delete, trình duyệt quay lại trang trước kèm flash
	req = httptest.NewRequest(http.MethodDelete, "/admin/products/1", nil)
	req.Host = "shop.local"
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Referer", "http://shop.local/admin/products?page=2")
	req.AddCookie(tokenFor(c, account.ID.Hex()))
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	c.Assert(w.Code, qt.Equals, http.StatusFound)
	c.Assert(w.Header().Get("Location"), qt.Equals, "/admin/products?page=2")
	var flash *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "flash" {
			flash = cookie
		}
	}
	c.Assert(flash, qt.IsNotNil)
	value, err := url.QueryUnescape(flash.Value)
	c.Assert(err, qt.IsNil)
	c.Assert(strings.HasPrefix(value, utils.FlashError+"|"), qt.IsTrue)

	// Referer khác host thì dùng fallback
	req = httptest.NewRequest(http.MethodDelete, "/admin/products/1", nil)
	req.Host = "shop.local"
	req.Header.Set("Accept", "text/html")
	req.Header.Set("Referer", "https://evil.example/phish")
	req.AddCookie(tokenFor(c, account.ID.Hex()))
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	c.Assert(w.Header().Get("Location"), qt.Equals, "/admin/products")

	// client không phải trình duyệt nhận 403
	req = httptest.NewRequest(http.MethodDelete, "/admin/products/1", nil)
	req.Header.Set("Accept", "application/json")
	req.AddCookie(tokenFor(c, account.ID.Hex()))
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	c.Assert(w.Code, qt.Equals, http.StatusForbidden)
}

func TestRequestID(t *testing.T) {
	c := qt.New(t)
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, ctx.GetString(logger.RequestIDKey))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(middleware.RequestIDHeader)
	c.Assert(generated, qt.HasLen, 36)
	c.Assert(w.Body.String(), qt.Equals, generated)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	c.Assert(w.Header().Get(middleware.RequestIDHeader), qt.Equals, "abc-123")
	c.Assert(w.Body.String(), qt.Equals, "abc-123")
}

func TestMethodOverride(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	for _, method := range []string{http.MethodPost, http.MethodPatch, http.MethodDelete} {
		r.Handle(method, "/items/:id", func(c *gin.Context) { c.String(http.StatusOK, c.Request.Method) })
	}
	handler := middleware.MethodOverride(r)

	tests := []struct {
		name   string
		method string
		target string
		form   string
		want   string
	}{
		{"query delete", http.MethodPost, "/items/1?_method=DELETE", "", http.MethodDelete},
		{"query lowercase", http.MethodPost, "/items/1?_method=patch", "", http.MethodPatch},
		{"form field", http.MethodPost, "/items/1", "_method=PATCH&status=active", http.MethodPatch},
		{"unsupported method", http.MethodPost, "/items/1?_method=TRACE", "", http.MethodPost},
		{"plain post", http.MethodPost, "/items/1", "status=active", http.MethodPost},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := qt.New(t)
			req := httptest.NewRequest(test.method, test.target, strings.NewReader(test.form))
			if test.form != "" {
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			c.Assert(w.Code, qt.Equals, http.StatusOK)
			c.Assert(w.Body.String(), qt.Equals, test.want)
		})
	}
}

func TestLoadFlash(t *testing.T) {
	c := qt.New(t)
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.LoadFlash())
	r.GET("/", func(ctx *gin.Context) {
		if flash := middleware.CurrentFlash(ctx); flash != nil {
			ctx.String(http.StatusOK, flash.Type+":"+flash.Message)
			return
		}
		ctx.String(http.StatusOK, "-")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "flash", Value: url.QueryEscape("success|Đã lưu")})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	c.Assert(w.Body.String(), qt.Equals, "success:Đã lưu")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	c.Assert(w.Body.String(), qt.Equals, "-")
}
