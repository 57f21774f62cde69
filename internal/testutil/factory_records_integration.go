//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/sqs_consumer/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор принятой записи
func MakeRecord(opts ...func(*domain.Record)) domain.Record {
	r := domain.Record{
		MessageID:  "msg-" + UniqSuffix(),
		Queue:      "events",
		Body:       `{"event":"created","id":"` + UniqSuffix() + `"}`,
		ReceivedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	for _, fn := range opts {
		fn(&r)
	}
	return r
}

func WithQueue(queue string) func(*domain.Record) {
	return func(r *domain.Record) { r.Queue = queue }
}

func WithBody(body string) func(*domain.Record) {
	return func(r *domain.Record) { r.Body = body }
}

func WithMessageID(id string) func(*domain.Record) {
	return func(r *domain.Record) { r.MessageID = id }
}
