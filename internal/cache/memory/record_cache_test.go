package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Gunvolt24/sqs_consumer/internal/domain"
)

func newRecord(id string) *domain.Record {
	return &domain.Record{MessageID: id, Queue: "events", Body: "body-" + id}
}

func ids(recs []*domain.Record) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.MessageID)
	}
	return out
}

func TestSetGet_HitMiss(t *testing.T) {
	c := NewLRUCacheTTL(2, 5*time.Minute)
	ctx := context.Background()

	// miss
	if _, ok := c.Get(ctx, "id-1"); ok {
		t.Fatalf("expected miss before Set")
	}

	// hit после Set
	_ = c.Set(ctx, newRecord("id-1"))
	got, ok := c.Get(ctx, "id-1")
	if !ok || got.MessageID != "id-1" || got.Body != "body-id-1" {
		t.Fatalf("expected hit for id-1, got %+v", got)
	}
}

func TestSet_IgnoresEmpty(t *testing.T) {
	c := NewLRUCacheTTL(2, 0)
	ctx := context.Background()

	_ = c.Set(ctx, nil)
	_ = c.Set(ctx, &domain.Record{Body: "no id"})
	if c.Len() != 0 {
		t.Fatalf("records without id must be ignored, len=%d", c.Len())
	}
}

func TestTTL_Expiry(t *testing.T) {
	c := NewLRUCacheTTL(2, 100*time.Millisecond)
	ctx := context.Background()

	_ = c.Set(ctx, newRecord("ttl"))
	if _, ok := c.Get(ctx, "ttl"); !ok {
		t.Fatalf("expected hit right after Set")
	}
	time.Sleep(150 * time.Millisecond)
	if _, ok := c.Get(ctx, "ttl"); ok {
		t.Fatalf("expected miss after TTL expires")
	}
	if got := c.Recent(ctx, 10, 0); len(got) != 0 {
		t.Fatalf("expired records must not be listed, got %v", ids(got))
	}
}

func TestLRUEviction(t *testing.T) {
	c := NewLRUCacheTTL(2, 0) // 0 = без TTL
	ctx := context.Background()

	_ = c.Set(ctx, newRecord("A"))
	_ = c.Set(ctx, newRecord("B"))
	// A сделать «свежим»
	if _, ok := c.Get(ctx, "A"); !ok {
		t.Fatalf("expected hit for A")
	}
	// Добавляем C — вытеснит B (самый старый)
	_ = c.Set(ctx, newRecord("C"))

	if _, ok := c.Get(ctx, "B"); ok {
		t.Fatalf("expected B to be evicted")
	}
	if _, ok := c.Get(ctx, "A"); !ok || c.Len() != 2 {
		t.Fatalf("expected A & C to stay in cache")
	}
}

func TestRecent_OrderAndPaging(t *testing.T) {
	c := NewLRUCacheTTL(10, 0)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_ = c.Set(ctx, newRecord(fmt.Sprintf("m%d", i)))
	}

	if got := fmt.Sprint(ids(c.Recent(ctx, 3, 0))); got != "[m5 m4 m3]" {
		t.Fatalf("first page = %s", got)
	}
	if got := fmt.Sprint(ids(c.Recent(ctx, 3, 3))); got != "[m2 m1]" {
		t.Fatalf("second page = %s", got)
	}
	if got := c.Recent(ctx, 3, 10); len(got) != 0 {
		t.Fatalf("offset past end must be empty, got %v", ids(got))
	}
	if got := c.Recent(ctx, 0, 0); got != nil {
		t.Fatalf("zero limit must be nil")
	}

	// просмотр списка не меняет порядок
	_ = c.Recent(ctx, 5, 0)
	if got := fmt.Sprint(ids(c.Recent(ctx, 1, 0))); got != "[m5]" {
		t.Fatalf("head after listing = %s", got)
	}
}

func TestCloneImmutability(t *testing.T) {
	c := NewLRUCacheTTL(1, 0)
	ctx := context.Background()
	orig := newRecord("Z")
	_ = c.Set(ctx, orig)

	// меняем исходник и то, что вернул Get — не должно влиять на кэш
	orig.Body = "mutated"
	r1, _ := c.Get(ctx, "Z")
	r1.Body = "changed"

	r2, _ := c.Get(ctx, "Z")
	if r2.Body != "body-Z" {
		t.Fatalf("cache should store and return clones, got %q", r2.Body)
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := NewLRUCacheTTL(50, time.Minute)
	ctx := context.Background()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				id := fmt.Sprintf("g%d-%d", g, i%20)
				_ = c.Set(ctx, newRecord(id))
				_, _ = c.Get(ctx, id)
				_ = c.Recent(ctx, 5, 0)
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 50 {
		t.Fatalf("capacity exceeded: %d", c.Len())
	}
}
