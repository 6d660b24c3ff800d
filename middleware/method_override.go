package middleware

import (
	"net/http"
	"strings"
)

const methodOverrideField = "_method"

var overridable = map[string]bool{
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// MethodOverride cho form HTML gửi PATCH/PUT/DELETE qua POST kèm _method
// (query hoặc form field). Bọc cả engine vì gin chọn route trước khi chạy
// middleware.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			method := r.URL.Query().Get(methodOverrideField)
			if method == "" && isForm(r) {
				method = r.PostFormValue(methodOverrideField)
			}
			if method = strings.ToUpper(method); overridable[method] {
				r.Method = method
			}
		}
		next.ServeHTTP(w, r)
	})
}

func isForm(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(ct, "multipart/form-data")
}
