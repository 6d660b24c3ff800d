package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

type Pagination struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// NewPagination đọc ?page= từ query, trang không hợp lệ quay về 1
func NewPagination(c *gin.Context, limit int) Pagination {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return Pagination{Page: page, Limit: limit}
}

func (p Pagination) Skip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

func (p *Pagination) SetTotal(total int64) {
	p.Total = total
	if p.Limit > 0 {
		p.TotalPages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
}

// Pages trả về danh sách số trang để render
func (p Pagination) Pages() []int {
	pages := make([]int, 0, p.TotalPages)
	for i := 1; i <= p.TotalPages; i++ {
		pages = append(pages, i)
	}
	return pages
}
