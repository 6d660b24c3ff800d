// Package views đóng gói template HTML và file tĩnh vào binary.
package views

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-extras/go-kit/must"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates static
var content embed.FS

var (
	templatesFS = must.Must(fs.Sub(content, "templates"))
	staticFS    = must.Must(fs.Sub(content, "static"))
)

var vnd = message.NewPrinter(language.Vietnamese)

// Funcs là các hàm dùng trong template
func Funcs() template.FuncMap {
	return template.FuncMap{
		"formatCurrency": FormatCurrency,
		"formatDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("02/01/2006 15:04")
		},
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"pageURL": PageURL,
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s) // nội dung bài viết do admin nhập
		},
	}
}

// FormatCurrency in số tiền theo kiểu Việt Nam, ví dụ 35.999.100₫
func FormatCurrency(amount int64) string {
	return vnd.Sprintf("%d", amount) + "₫"
}

// PageURL giữ nguyên các tham số lọc hiện tại và chỉ đổi page
func PageURL(query url.Values, page int) string {
	q := url.Values{}
	for k, v := range query {
		q[k] = v
	}
	q.Set("page", strconv.Itoa(page))
	return "?" + q.Encode()
}

// Templates parse toàn bộ template; tên template là tên trong {{define}}
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templatesFS, "*/*.html")
}

func Static() http.FileSystem {
	return http.FS(staticFS)
}
