// Пакет ctxmeta — нейтральный слой для метаданных, которые прокидываются
// через context.Context (request_id, message_id, queue, trace_id).
// HTTP-слой, цикл чтения очереди и логгер зависят от него, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	// Ключи контекста (неэкспортируемый тип — чтобы избежать коллизий).
	KeyRequestID ctxKey = "request_id"
	KeyMessageID ctxKey = "message_id"
	KeyQueue     ctxKey = "queue"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return valueFrom(ctx, KeyRequestID)
}

// WithMessageID кладёт идентификатор сообщения очереди в контекст.
func WithMessageID(ctx context.Context, messageID string) context.Context {
	return withValue(ctx, KeyMessageID, messageID)
}

// MessageIDFromContext достаёт идентификатор сообщения.
func MessageIDFromContext(ctx context.Context) (string, bool) {
	return valueFrom(ctx, KeyMessageID)
}

// WithQueue кладёт имя очереди в контекст.
func WithQueue(ctx context.Context, queue string) context.Context {
	return withValue(ctx, KeyQueue, queue)
}

// QueueFromContext достаёт имя очереди.
func QueueFromContext(ctx context.Context) (string, bool) {
	return valueFrom(ctx, KeyQueue)
}

func withValue(ctx context.Context, key ctxKey, v string) context.Context {
	if ctx == nil || v == "" {
		return ctx
	}
	return context.WithValue(ctx, key, v)
}

func valueFrom(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
