package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_CountsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/items/:id", "200"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/42", nil))

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/items/:id", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordHelpers(t *testing.T) {
	before := testutil.ToFloat64(statusTransitionsTotal.WithLabelValues("paid"))
	RecordStatusTransition("paid")
	assert.Equal(t, before+1, testutil.ToFloat64(statusTransitionsTotal.WithLabelValues("paid")))

	before = testutil.ToFloat64(authAttemptsTotal.WithLabelValues("failure"))
	RecordAuthAttempt(false)
	assert.Equal(t, before+1, testutil.ToFloat64(authAttemptsTotal.WithLabelValues("failure")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/metrics", Handler())
	RecordContactSubmission()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "contact_submissions_total"))
}
