package utils_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/product-management/utils"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		query string
		page  int
		skip  int64
	}{
		{query: "", page: 1, skip: 0},
		{query: "?page=3", page: 3, skip: 8},
		{query: "?page=-1", page: 1, skip: 0},
		{query: "?page=abc", page: 1, skip: 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c := qt.New(t)
			gin.SetMode(gin.TestMode)

			ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
			ctx.Request = httptest.NewRequest(http.MethodGet, "/products"+tt.query, nil)

			p := utils.NewPagination(ctx, 4)
			c.Assert(p.Page, qt.Equals, tt.page)
			c.Assert(p.Skip(), qt.Equals, tt.skip)
		})
	}
}

func TestPaginationTotal(t *testing.T) {
	c := qt.New(t)

	p := utils.Pagination{Page: 1, Limit: 4}
	p.SetTotal(7)
	c.Assert(p.TotalPages, qt.Equals, 2)
	c.Assert(p.Pages(), qt.DeepEquals, []int{1, 2})

	p.SetTotal(0)
	c.Assert(p.Pages(), qt.DeepEquals, []int{})
}
