package controllers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/product-management/models"
)

// table là dữ liệu cho template admin/table
type table struct {
	columns []string
	rows    [][]string
}

type tableLoader func(ctx context.Context) (table, error)

func (ctl *AdminController) renderTable(title string, load tableLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, err := load(c.Request.Context())
		if err != nil {
			renderError(c, err, "load "+strings.ToLower(title))
			return
		}
		data := ctl.page(c, title)
		data["heading"] = title
		data["columns"] = t.columns
		data["rows"] = t.rows
		c.HTML(http.StatusOK, "admin/table", data)
	}
}

func statusLabel(status string) string {
	if status == models.StatusActive {
		return "Hoạt động"
	}
	return "Dừng hoạt động"
}

// GET /products-category
func (ctl *AdminController) ProductCategories(c *gin.Context) {
	ctl.renderTable("Danh mục sản phẩm", func(ctx context.Context) (table, error) {
		items, err := ctl.store.ListProductCategoriesAdmin(ctx)
		if err != nil {
			return table{}, err
		}
		t := table{columns: []string{"Tiêu đề", "Slug", "Vị trí", "Trạng thái"}}
		for _, it := range items {
			t.rows = append(t.rows, []string{it.Title, it.Slug, strconv.Itoa(it.Position), statusLabel(it.Status)})
		}
		return t, nil
	})(c)
}

// GET /articles-category
func (ctl *AdminController) ArticleCategories(c *gin.Context) {
	ctl.renderTable("Danh mục bài viết", func(ctx context.Context) (table, error) {
		items, err := ctl.store.ListArticleCategoriesAdmin(ctx)
		if err != nil {
			return table{}, err
		}
		t := table{columns: []string{"Tiêu đề", "Slug", "Vị trí", "Trạng thái"}}
		for _, it := range items {
			t.rows = append(t.rows, []string{it.Title, it.Slug, strconv.Itoa(it.Position), statusLabel(it.Status)})
		}
		return t, nil
	})(c)
}

// GET /brands
func (ctl *AdminController) Brands(c *gin.Context) {
	ctl.renderTable("Thương hiệu", func(ctx context.Context) (table, error) {
		items, err := ctl.store.ListBrands(ctx)
		if err != nil {
			return table{}, err
		}
		t := table{columns: []string{"Tiêu đề", "Slug", "Mô tả", "Trạng thái"}}
		for _, it := range items {
			t.rows = append(t.rows, []string{it.Title, it.Slug, it.Description, statusLabel(it.Status)})
		}
		return t, nil
	})(c)
}

// GET /articles
func (ctl *AdminController) Articles(c *gin.Context) {
	ctl.renderTable("Bài viết", func(ctx context.Context) (table, error) {
		items, err := ctl.store.ListArticlesAdmin(ctx)
		if err != nil {
			return table{}, err
		}
		categories, err := ctl.store.ListArticleCategoriesAdmin(ctx)
		if err != nil {
			return table{}, err
		}
		names := make(map[string]string, len(categories))
		for _, cat := range categories {
			names[cat.ID.Hex()] = cat.Title
		}

		t := table{columns: []string{"Tiêu đề", "Danh mục", "Trạng thái", "Ngày tạo"}}
		for _, it := range items {
			t.rows = append(t.rows, []string{
				it.Title,
				names[it.CategoryID],
				statusLabel(it.Status),
				it.CreateBy.CreatedAt.Format("02/01/2006 15:04"),
			})
		}
		return t, nil
	})(c)
}

// GET /roles
func (ctl *AdminController) Roles(c *gin.Context) {
	ctl.renderTable("Nhóm quyền", func(ctx context.Context) (table, error) {
		items, err := ctl.store.ListRoles(ctx)
		if err != nil {
			return table{}, err
		}
		t := table{columns: []string{"Tiêu đề", "Mô tả", "Quyền"}}
		for _, it := range items {
			t.rows = append(t.rows, []string{it.Title, it.Description, strings.Join(it.Permissions, ", ")})
		}
		return t, nil
	})(c)
}

// GET /accounts
func (ctl *AdminController) Accounts(c *gin.Context) {
	ctl.renderTable("Tài khoản", func(ctx context.Context) (table, error) {
		items, err := ctl.store.ListAccounts(ctx)
		if err != nil {
			return table{}, err
		}
		roles, err := ctl.store.ListRoles(ctx)
		if err != nil {
			return table{}, err
		}
		roleTitles := make(map[string]string, len(roles))
		for _, r := range roles {
			roleTitles[r.ID.Hex()] = r.Title
		}

		t := table{columns: []string{"Họ tên", "Email", "Điện thoại", "Nhóm quyền", "Trạng thái"}}
		for _, it := range items {
			t.rows = append(t.rows, []string{it.FullName, it.Email, it.Phone, roleTitles[it.RoleID], statusLabel(it.Status)})
		}
		return t, nil
	})(c)
}

// GET /users
func (ctl *AdminController) Users(c *gin.Context) {
	ctl.renderTable("Khách hàng", func(ctx context.Context) (table, error) {
		items, err := ctl.store.ListUsers(ctx)
		if err != nil {
			return table{}, err
		}
		t := table{columns: []string{"Họ tên", "Email", "Điện thoại", "Trạng thái"}}
		for _, it := range items {
			t.rows = append(t.rows, []string{it.FullName, it.Email, it.Phone, statusLabel(it.Status)})
		}
		return t, nil
	})(c)
}
