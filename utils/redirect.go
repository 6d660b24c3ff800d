package utils

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// BackURL trả về trang trước (Referer) nếu cùng host, ngược lại là fallback.
// Referer khác host bị bỏ qua để tránh open redirect.
func BackURL(c *gin.Context, fallback string) string {
	ref, err := url.Parse(c.Request.Referer())
	if err != nil || !strings.HasPrefix(ref.Path, "/") {
		return fallback
	}
	if ref.Host != "" && ref.Host != c.Request.Host {
		return fallback
	}
	return ref.RequestURI()
}
