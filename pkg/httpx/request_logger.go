package httpx

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/sqs_consumer/internal/ports"
	"github.com/Gunvolt24/sqs_consumer/pkg/ctxmeta"
)

// RequestLogger — middleware журнала HTTP-запросов.
// Пути из skip (служебные /ping, /metrics) не логируются; 5xx пишутся как error, 4xx — как warn.
func RequestLogger(log ports.Logger, skip ...string) gin.HandlerFunc {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if _, ok := skipped[path]; ok {
			return
		}
		if path == "" {
			path = c.Request.URL.Path
		}

		ctx := c.Request.Context()
		rid, _ := ctxmeta.RequestIDFromContext(ctx)
		tr, _ := ctxmeta.TraceIDFromContext(ctx)

		logf := log.Infof
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			logf = log.Errorf
		case status >= http.StatusBadRequest:
			logf = log.Warnf
		}

		logf(ctx, "request id=%s trace=%s method=%s path=%s status=%d ip=%s duration=%s size=%d",
			rid, tr,
			c.Request.Method,
			path,
			c.Writer.Status(),
			c.ClientIP(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}
