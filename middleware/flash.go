package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/product-management/utils"
)

const flashKey = "flash"

// LoadFlash đọc flash của request trước (nếu có) để view hiển thị
func LoadFlash() gin.HandlerFunc {
	return func(c *gin.Context) {
		if flash := utils.PopFlash(c); flash != nil {
			c.Set(flashKey, flash)
		}
		c.Next()
	}
}

// CurrentFlash trả về flash đã nạp, nil nếu không có
func CurrentFlash(c *gin.Context) *utils.Flash {
	if v, ok := c.Get(flashKey); ok {
		if flash, ok := v.(*utils.Flash); ok {
			return flash
		}
	}
	return nil
}
