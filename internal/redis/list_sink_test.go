package redis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Gunvolt24/sqs_consumer/internal/domain"
)

// fakeList — подмена listPusher: запоминает команды.
type fakeList struct {
	pushed  [][]byte
	trims   [][2]int64
	pushErr error
	trimErr error
	lastKey string
}

func (f *fakeList) RPush(_ context.Context, key string, values ...interface{}) *redis.IntCmd {
	f.lastKey = key
	if f.pushErr != nil {
		return redis.NewIntResult(0, f.pushErr)
	}
	for _, v := range values {
		f.pushed = append(f.pushed, v.([]byte))
	}
	return redis.NewIntResult(int64(len(f.pushed)), nil)
}

func (f *fakeList) LTrim(_ context.Context, _ string, start, stop int64) *redis.StatusCmd {
	f.trims = append(f.trims, [2]int64{start, stop})
	if f.trimErr != nil {
		return redis.NewStatusResult("", f.trimErr)
	}
	return redis.NewStatusResult("OK", nil)
}

func TestListSink_StorePushesJSONAndTrims(t *testing.T) {
	f := &fakeList{}
	s := &ListSink{client: f, key: "aggregates", maxLen: 100}

	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rec := &domain.Record{MessageID: "m1", Queue: "events", Body: "hello", ReceivedAt: at}

	if err := s.Store(context.Background(), rec); err != nil {
		t.Fatalf("store: %v", err)
	}
	if f.lastKey != "aggregates" || len(f.pushed) != 1 {
		t.Fatalf("unexpected push key=%q n=%d", f.lastKey, len(f.pushed))
	}

	var got domain.Record
	if err := json.Unmarshal(f.pushed[0], &got); err != nil {
		t.Fatalf("pushed value is not json: %v", err)
	}
	if got.MessageID != "m1" || got.Body != "hello" || !got.ReceivedAt.Equal(at) {
		t.Fatalf("unexpected record %+v", got)
	}

	if len(f.trims) != 1 || f.trims[0] != [2]int64{-100, -1} {
		t.Fatalf("trims = %v", f.trims)
	}
}

func TestListSink_NoTrimWithoutMaxLen(t *testing.T) {
	f := &fakeList{}
	s := &ListSink{client: f, key: "k"}

	if err := s.Store(context.Background(), &domain.Record{MessageID: "m1"}); err != nil {
		t.Fatalf("store: %v", err)
	}
	if len(f.trims) != 0 {
		t.Fatalf("trim must be skipped, got %v", f.trims)
	}
}

func TestListSink_Errors(t *testing.T) {
	boom := errors.New("connection refused")

	s := &ListSink{client: &fakeList{pushErr: boom}, key: "k", maxLen: 10}
	if err := s.Store(context.Background(), &domain.Record{MessageID: "m1"}); !errors.Is(err, boom) {
		t.Fatalf("push: want %v, got %v", boom, err)
	}

	s = &ListSink{client: &fakeList{trimErr: boom}, key: "k", maxLen: 10}
	if err := s.Store(context.Background(), &domain.Record{MessageID: "m1"}); !errors.Is(err, boom) {
		t.Fatalf("trim: want %v, got %v", boom, err)
	}

	if err := s.Store(context.Background(), nil); err == nil {
		t.Fatal("nil record must fail")
	}
}

func TestListSink_CloseOnce(t *testing.T) {
	calls := 0
	s := &ListSink{client: &fakeList{}, closer: func() error { calls++; return nil }}

	_ = s.Close()
	_ = s.Close()
	if calls != 1 {
		t.Fatalf("closer calls = %d, want 1", calls)
	}

	if err := (&ListSink{}).Close(); err != nil {
		t.Fatalf("close without client: %v", err)
	}
}
