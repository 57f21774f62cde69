package httpx

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Page — окно выборки списка.
type Page struct {
	Limit  int
	Offset int
}

// ClampInt — ограничение значения v в диапазоне [lo, hi].
func ClampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// ParsePage читает limit/offset из query.
// Нечисловой limit → defaultLimit; limit прижимается к [1, maxLimit];
// нечисловой или отрицательный offset → 0.
func ParsePage(c *gin.Context, defaultLimit, maxLimit int) Page {
	p := Page{Limit: ClampInt(defaultLimit, 1, maxLimit)}

	if raw, ok := c.GetQuery("limit"); ok {
		if v, err := strconv.Atoi(raw); err == nil {
			p.Limit = ClampInt(v, 1, maxLimit)
		}
	}
	if raw, ok := c.GetQuery("offset"); ok {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			p.Offset = v
		}
	}
	return p
}
