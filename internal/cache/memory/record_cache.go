package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/sqs_consumer/internal/domain"
	"github.com/Gunvolt24/sqs_consumer/internal/ports"
	"github.com/Gunvolt24/sqs_consumer/pkg/metrics"
)

// Проверка, что LRUCacheTTL удовлетворяет интерфейсу RecordCache.
var _ ports.RecordCache = (*LRUCacheTTL)(nil)

type entry struct {
	id        string
	record    *domain.Record
	expiresAt time.Time
}

// LRUCacheTTL — потокобезопасный LRU-кэш записей с TTL.
// Голова списка — последняя использованная запись.
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	cache map[string]*list.Element

	mu sync.Mutex
}

// NewLRUCacheTTL — конструктор. ttl <= 0 — записи не истекают.
func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		cache:    make(map[string]*list.Element),
	}
}

// Get — запись по id сообщения; продлевает TTL при попадании.
func (c *LRUCacheTTL) Get(_ context.Context, messageID string) (*domain.Record, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.cache[messageID]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(c.ll.Len()))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneRecord(ent.record), true
}

// Set — сохранить/обновить запись. Записи без MessageID игнорируются.
func (c *LRUCacheTTL) Set(_ context.Context, rec *domain.Record) error {
	if rec == nil || rec.MessageID == "" {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.cache[rec.MessageID]; ok {
		ent := elem.Value.(*entry)
		ent.record = cloneRecord(rec)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		id:        rec.MessageID,
		record:    cloneRecord(rec),
		expiresAt: c.expiryFrom(now),
	})
	c.cache[rec.MessageID] = elem
	metrics.CacheOps.WithLabelValues("set").Inc()
	metrics.CacheSize.Set(float64(c.ll.Len()))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// Recent — актуальные записи от головы списка, страница [offset, offset+limit).
// Порядок не меняет: просмотр списка не считается использованием.
func (c *LRUCacheTTL) Recent(_ context.Context, limit, offset int) []*domain.Record {
	if limit <= 0 {
		return nil
	}
	if offset < 0 {
		offset = 0
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*domain.Record, 0, min(limit, c.ll.Len()))
	skipped := 0
	for elem := c.ll.Front(); elem != nil && len(out) < limit; elem = elem.Next() {
		ent := elem.Value.(*entry)
		if c.isExpired(ent, now) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, cloneRecord(ent.record))
	}
	return out
}

// Len — число элементов (включая ещё не вычищенные истёкшие).
func (c *LRUCacheTTL) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
