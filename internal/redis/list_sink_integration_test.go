//go:build integration

package redis_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/sqs_consumer/internal/domain"
	iredis "github.com/Gunvolt24/sqs_consumer/internal/redis"
	"github.com/Gunvolt24/sqs_consumer/internal/testutil"
)

// Запись в список и обрезка до MaxLen
func TestListSink_Store_TC(t *testing.T) {
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	env, stop, err := testutil.StartRedisTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	key := "aggregates-" + testutil.UniqSuffix()
	sink, err := iredis.NewListSink(ctx, &iredis.ListConfig{Addr: env.Addr, Key: key, MaxLen: 3})
	require.NoError(t, err)
	t.Cleanup(func() { _ = sink.Close() })

	for i := 0; i < 5; i++ {
		rec := testutil.MakeRecord(testutil.WithMessageID(fmt.Sprintf("m-%d", i)))
		require.NoError(t, sink.Store(ctx, &rec))
	}

	rdb := goredis.NewClient(&goredis.Options{Addr: env.Addr})
	t.Cleanup(func() { _ = rdb.Close() })

	vals, err := rdb.LRange(ctx, key, 0, -1).Result()
	require.NoError(t, err)
	require.Len(t, vals, 3)

	var first domain.Record
	require.NoError(t, json.Unmarshal([]byte(vals[0]), &first))
	require.Equal(t, "m-2", first.MessageID)
}
