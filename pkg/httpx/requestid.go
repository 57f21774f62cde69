package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Gunvolt24/sqs_consumer/pkg/ctxmeta"
)

const (
	HeaderRequestID = "X-Request-ID"

	maxRequestIDLen = 128
)

// RequestIDMiddleware берёт X-Request-ID клиента (если он допустим) или генерирует UUID,
// кладёт его в контекст запроса и возвращает в ответном заголовке.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if !validRequestID(requestID) {
			requestID = uuid.NewString()
		}
		c.Header(HeaderRequestID, requestID)
		c.Request = c.Request.WithContext(ctxmeta.WithRequestID(c.Request.Context(), requestID))

		c.Next()
	}
}

// validRequestID — непустой, не длиннее maxRequestIDLen, только видимые ASCII-символы
// (значение попадает в логи как есть).
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
