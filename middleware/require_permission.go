package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vnkhanh/product-management/logger"
	"github.com/vnkhanh/product-management/utils"
)

const forbiddenMessage = "Bạn không có quyền thực hiện thao tác này"

// RequirePermission chỉ cho đi tiếp khi role hiện tại có permission.
// Trình duyệt nhận flash lỗi và được đưa về trang trước (hoặc fallback);
// client khác nhận 403.
func RequirePermission(permission, fallback string, flashMaxAge time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentRole(c).Can(permission) {
			c.Next()
			return
		}

		logger.FromGin(c).Warn("permission denied",
			zap.String("permission", permission),
			zap.String("path", c.Request.URL.Path))

		if !wantsHTML(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": forbiddenMessage})
			return
		}

		utils.SetFlash(c, utils.FlashError, forbiddenMessage, flashMaxAge)
		c.Redirect(http.StatusFound, utils.BackURL(c, fallback))
		c.Abort()
	}
}

func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}
