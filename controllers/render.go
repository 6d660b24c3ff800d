package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vnkhanh/product-management/database"
	"github.com/vnkhanh/product-management/logger"
)

const notFoundTitle = "404 NOT FOUND"

// NotFound render trang 404 của giao diện khách
func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "client/404", gin.H{
		"pageTitle": notFoundTitle,
		"keyword":   "",
	})
}

// renderError: ErrNotFound thành trang 404, lỗi khác ghi log và trả 500
func renderError(c *gin.Context, err error, msg string) {
	if isNotFound(err) {
		NotFound(c)
		return
	}
	logger.FromGin(c).Error(msg, zap.Error(err))
	_ = c.Error(err)
	c.HTML(http.StatusInternalServerError, "client/500", gin.H{
		"pageTitle": "500 INTERNAL SERVER ERROR",
		"keyword":   "",
	})
}

func isNotFound(err error) bool {
	return errors.Is(err, database.ErrNotFound)
}
