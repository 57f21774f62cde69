//go:build integration

package rest_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cachemem "github.com/Gunvolt24/sqs_consumer/internal/cache/memory"
	"github.com/Gunvolt24/sqs_consumer/internal/domain"
	pgrepo "github.com/Gunvolt24/sqs_consumer/internal/repo/postgres"
	"github.com/Gunvolt24/sqs_consumer/internal/testutil"
	rest "github.com/Gunvolt24/sqs_consumer/internal/transport/http"
	"github.com/Gunvolt24/sqs_consumer/internal/usecase"
	"github.com/Gunvolt24/sqs_consumer/pkg/ctxmeta"
	"github.com/Gunvolt24/sqs_consumer/pkg/logger"
)

// Агрегатор с приёмником Postgres → записи видны через HTTP и лежат в БД
func TestHTTP_AggregatedRecords_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	defer func() { _ = stop(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(ctx, pg.DSN))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	repo := pgrepo.NewRecordRepository(pg.Pool)
	svc := usecase.NewAggregateService(repo, cachemem.NewLRUCacheTTL(100, time.Minute), logg,
		usecase.AggregateOptions{SinkName: "postgres"})

	// принимаем 3 сообщения так, как это делает цикл чтения очереди
	for i := 1; i <= 3; i++ {
		mctx := ctxmeta.WithQueue(ctxmeta.WithMessageID(ctx, fmt.Sprintf("m-%d", i)), "events")
		require.NoError(t, svc.Aggregate(mctx, fmt.Sprintf("body-%d", i)))
	}

	var n int
	require.NoError(t, pg.Pool.QueryRow(ctx, `SELECT count(*) FROM aggregates WHERE queue = $1`, "events").Scan(&n))
	require.Equal(t, 3, n)

	// http
	h := rest.NewHandler(svc, logg, 2*time.Second)
	ts := httptest.NewServer(rest.NewRouter(h, ""))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/records/m-2")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got domain.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "body-2", got.Body)
	require.Equal(t, "events", got.Queue)

	resp2, err := http.Get(ts.URL + "/records?limit=2")
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	var list []domain.Record
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&list))
	require.Len(t, list, 2)

	resp3, err := http.Get(ts.URL + "/records/unknown")
	require.NoError(t, err)
	defer resp3.Body.Close()
	require.Equal(t, http.StatusNotFound, resp3.StatusCode)

	// пустой кэш (например, после рестарта) → запись читается из Postgres
	cold := usecase.NewAggregateService(repo, cachemem.NewLRUCacheTTL(100, time.Minute), logg,
		usecase.AggregateOptions{SinkName: "postgres"})
	coldSrv := httptest.NewServer(rest.NewRouter(rest.NewHandler(cold, logg, 2*time.Second), ""))
	defer coldSrv.Close()

	resp4, err := http.Get(coldSrv.URL + "/records/m-1")
	require.NoError(t, err)
	defer resp4.Body.Close()
	require.Equal(t, http.StatusOK, resp4.StatusCode)

	var fromDB domain.Record
	require.NoError(t, json.NewDecoder(resp4.Body).Decode(&fromDB))
	require.Equal(t, "body-1", fromDB.Body)
}
