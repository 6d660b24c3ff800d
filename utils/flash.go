package utils

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

const (
	FlashSuccess = "success"
	FlashError   = "error"
)

type Flash struct {
	Type    string
	Message string
}

// SetFlash lưu thông báo cho request kế tiếp (thường là sau redirect)
func SetFlash(c *gin.Context, kind, message string, maxAge time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, kind+"|"+message, int(maxAge.Seconds()), "/", "", false, true)
}

// PopFlash đọc rồi xoá thông báo, trả về nil nếu không có
func PopFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	kind, message, ok := strings.Cut(raw, "|")
	if !ok {
		return nil
	}
	return &Flash{Type: kind, Message: message}
}
