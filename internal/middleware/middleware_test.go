package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, w.Header().Get("X-Request-ID"), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "given-id")
	w = serve(router, req)
	assert.Equal(t, "given-id", w.Body.String())
}

func TestErrorHandler(t *testing.T) {
	logger, hook := test.NewNullLogger()

	router := gin.New()
	router.Use(RequestID(), ErrorHandler(logger))
	router.POST("/bind", func(c *gin.Context) {
		_ = c.Error(errors.New("unexpected end of JSON input")).SetType(gin.ErrorTypeBind)
	})
	router.POST("/internal", func(c *gin.Context) {
		_ = c.Error(errors.New("connection reset by peer"))
	})
	router.POST("/written", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "custom"})
		_ = c.Error(errors.New("already answered"))
	})

	w := serve(router, httptest.NewRequest(http.MethodPost, "/bind", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")

	w = serve(router, httptest.NewRequest(http.MethodPost, "/internal", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)

	w = serve(router, httptest.NewRequest(http.MethodPost, "/written", nil))
	assert.JSONEq(t, `{"error":"custom"}`, w.Body.String())
}

func TestRecovery(t *testing.T) {
	logger, hook := test.NewNullLogger()

	router := gin.New()
	router.Use(Recovery(logger))
	router.GET("/", func(c *gin.Context) { panic("boom") })

	w := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "boom", hook.LastEntry().Data["panic"])
}

func TestCORS_Preflight(t *testing.T) {
	router := gin.New()
	router.Use(CORS())
	router.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(router, httptest.NewRequest(http.MethodOptions, "/", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimiter(t *testing.T) {
	logger, _ := test.NewNullLogger()

	router := gin.New()
	router.Use(RateLimiter(logger, 0.001, 2))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, serve(router, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRequestSizeLimit(t *testing.T) {
	router := gin.New()
	router.Use(RequestSizeLimit(8))
	router.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(router, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123456789")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = serve(router, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("ok")))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStructuredLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	router := gin.New()
	router.Use(RequestID(), StructuredLogger(logger))
	router.POST("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	serve(router, httptest.NewRequest(http.MethodPost, "/ok?x=1", strings.NewReader(`{"a":1}`)))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Request completed", entry.Message)
	assert.Equal(t, "/ok", entry.Data["path"])
	assert.Equal(t, "x=1", entry.Data["query"])
	assert.Equal(t, `{"a":1}`, entry.Data["request_body"])
	assert.NotEmpty(t, entry.Data["request_id"])

	serve(router, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestPerformanceMonitor(t *testing.T) {
	logger, hook := test.NewNullLogger()

	router := gin.New()
	router.Use(RequestID(), PerformanceMonitor(logger, time.Nanosecond))
	router.GET("/slow", func(c *gin.Context) {
		time.Sleep(2 * time.Millisecond)
		c.Status(http.StatusOK)
	})

	w := serve(router, httptest.NewRequest(http.MethodGet, "/slow", nil))
	require.Equal(t, http.StatusOK, w.Code)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "Slow request detected", entry.Message)
	assert.Equal(t, "/slow", entry.Data["path"])
	assert.Equal(t, w.Header().Get("X-Request-ID"), entry.Data["request_id"])
}

func TestPerformanceMonitor_FastRequestNotLogged(t *testing.T) {
	logger, hook := test.NewNullLogger()

	router := gin.New()
	router.Use(PerformanceMonitor(logger, time.Minute))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, hook.AllEntries())
}

func TestSecurityHeaders(t *testing.T) {
	router := gin.New()
	router.Use(SecurityHeaders())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
}
