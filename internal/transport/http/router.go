package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/sqs_consumer/internal/ports"
	"github.com/Gunvolt24/sqs_consumer/pkg/httpx"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type Handler struct {
	reader  ports.RecordReader
	log     ports.Logger
	timeout time.Duration
}

// NewHandler — timeout <= 0 отключает ограничение времени обработчика.
func NewHandler(reader ports.RecordReader, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{reader: reader, log: log, timeout: timeout}
}

// NewRouter собирает gin: recovery, request-id, логирование запросов,
// otelgin при заданном serviceName.
func NewRouter(h *Handler, serviceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if serviceName != "" {
		r.Use(otelgin.Middleware(serviceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log, "/ping", "/metrics"))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/records", h.listRecent)
	r.GET("/records/:id", h.getRecordByID)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	return r
}

func (h *Handler) getRecordByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	rec, ok := h.reader.Recent(ctx, id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) listRecent(c *gin.Context) {
	// limit/offset с безопасными дефолтами и границами
	page := httpx.ParsePage(c, defaultListLimit, maxListLimit)

	ctx, cancel := h.requestContext(c)
	defer cancel()

	recs := h.reader.RecentList(ctx, page.Limit, page.Offset)
	if recs == nil {
		c.JSON(http.StatusOK, []any{})
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}
