package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vnkhanh/product-management/metrics"
)

func TestHTTPMetricsMiddleware(t *testing.T) {
	c := qt.New(t)
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	m := metrics.NewHTTPMetrics("shop", reg)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/products/detail/:slug", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	for _, path := range []string{"/products/detail/a", "/products/detail/b", "/nope"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	expected := `
# HELP http_status_category_total Total number of responses by status category (2xx, 3xx, 4xx, 5xx)
# TYPE http_status_category_total counter
http_status_category_total{category="2xx",method="GET",path="/products/detail/:slug",service="shop"} 2
http_status_category_total{category="4xx",method="GET",path="unmatched",service="shop"} 1
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "http_status_category_total")
	c.Assert(err, qt.IsNil)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	c.Assert(w.Code, qt.Equals, http.StatusOK)
	c.Assert(w.Body.String(), qt.Contains, "http_requests_total")
}

func TestSeedMetrics(t *testing.T) {
	c := qt.New(t)

	reg := prometheus.NewRegistry()
	m := metrics.NewSeedMetrics(reg)
	m.Inserted("roles", 4)
	m.Inserted("roles", 1)
	m.Cleared("roles", 2)

	n, err := testutil.GatherAndCount(reg, "seed_documents_inserted_total", "seed_documents_deleted_total")
	c.Assert(err, qt.IsNil)
	c.Assert(n, qt.Equals, 2)

	expected := `
# HELP seed_documents_inserted_total Documents inserted by the seed tool
# TYPE seed_documents_inserted_total counter
seed_documents_inserted_total{collection="roles"} 5
`
	err = testutil.GatherAndCompare(reg, strings.NewReader(expected), "seed_documents_inserted_total")
	c.Assert(err, qt.IsNil)

	var nilMetrics *metrics.SeedMetrics
	nilMetrics.Inserted("roles", 1)
}
