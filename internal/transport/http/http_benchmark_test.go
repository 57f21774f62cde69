//go:build !integration

package rest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/sqs_consumer/internal/domain"
)

// --- Бенчмарки ---

// Базовый бенч: GET /records/:id — сравниваем LEAN vs FULL пайплайн
func BenchmarkHTTP_GetRecord(b *testing.B) {
	rec := makeRecord(1)
	h := NewHandler(readerStub{list: []*domain.Record{rec}}, nopLogger{}, 2*time.Second)

	lean := makeLeanRouter(h)
	full := makeFullRouter(h)

	b.Run("lean/no-mw", func(b *testing.B) {
		benchServeGET(b, lean, "/records/"+rec.MessageID, http.StatusOK)
	})
	b.Run("full/prod-mw", func(b *testing.B) {
		benchServeGET(b, full, "/records/"+rec.MessageID, http.StatusOK)
	})
}

// Пагинация: 10/50/100 — измеряем рост аллокаций и времени
func BenchmarkHTTP_ListRecent(b *testing.B) {
	for _, n := range []int{10, 50, 100} {
		b.Run("N="+strconv.Itoa(n), func(b *testing.B) {
			list := make([]*domain.Record, 0, n)
			for i := 0; i < n; i++ {
				list = append(list, makeRecord(i))
			}
			h := NewHandler(readerStub{list: list}, nopLogger{}, 2*time.Second)

			benchServeGET(b, makeLeanRouter(h), "/records?limit="+strconv.Itoa(n), http.StatusOK)
		})
	}
}

// Ошибочный путь (404): "цена" роутера и 404-хендлера
func BenchmarkHTTP_404(b *testing.B) {
	h := NewHandler(readerStub{}, nopLogger{}, 2*time.Second)
	benchServeGET(b, makeLeanRouter(h), "/records/nope", http.StatusNotFound)
}

// --- nopLogger — логгер, который не делает ничего. ---

type nopLogger struct{}

func (nopLogger) Debugf(context.Context, string, ...any) {}
func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// --- Стабы ---

// readerStub — заранее подготовленная выборка (без аллокаций на каждом вызове)
type readerStub struct{ list []*domain.Record }

func (s readerStub) Recent(_ context.Context, id string) (*domain.Record, bool) {
	for _, r := range s.list {
		if r.MessageID == id {
			return r, true
		}
	}
	return nil, false
}

func (s readerStub) RecentList(context.Context, int, int) []*domain.Record { return s.list }

// --- функции-помощники ---

func makeRecord(i int) *domain.Record {
	return &domain.Record{
		MessageID:  fmt.Sprintf("msg-%04d", i),
		Queue:      "events",
		Body:       fmt.Sprintf(`{"event":"created","seq":%d}`, i),
		ReceivedAt: time.Date(2025, 1, 1, 0, 0, i, 0, time.UTC),
	}
}

func makeLeanRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New() // без Recovery/otel/logger — получаем меньшую аллокацию
	r.GET("/records", h.listRecent)
	r.GET("/records/:id", h.getRecordByID)
	return r
}

func makeFullRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	// prod пайплайн из NewRouter
	return NewRouter(h, "")
}

func benchServeGET(b *testing.B, r *gin.Engine, path string, wantStatus int) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()

	// Параллельный режим ближе к реальности без TCP
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			// вычитываем тело
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != wantStatus {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}
