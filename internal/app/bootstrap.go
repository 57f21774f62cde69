package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/sqs_consumer/config"
	cachemem "github.com/Gunvolt24/sqs_consumer/internal/cache/memory"
	"github.com/Gunvolt24/sqs_consumer/internal/ports"
	"github.com/Gunvolt24/sqs_consumer/internal/sqs"
	rest "github.com/Gunvolt24/sqs_consumer/internal/transport/http"
	"github.com/Gunvolt24/sqs_consumer/internal/usecase"
	"github.com/Gunvolt24/sqs_consumer/pkg/logger"
	"github.com/Gunvolt24/sqs_consumer/pkg/metrics"
	"github.com/Gunvolt24/sqs_consumer/pkg/telemetry"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, консьюмеры очередей).
type App struct {
	Logger          ports.Logger            // логгер
	HTTPServer      *http.Server            // HTTP-сервер
	Consumers       []ports.MessageConsumer // по одному на очередь
	gracefulTimeout time.Duration           // время ожидания завершения HTTP-сервера
}

// ErrConsumerStopped — консьюмер вышел из Run без ошибки, хотя контекст не отменён.
var ErrConsumerStopped = errors.New("consumer stopped unexpectedly")

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// releaser — стек освобождения: ресурсы закрываются в обратном порядке захвата.
type releaser struct {
	fns  []func()
	once sync.Once
}

func (r *releaser) push(fn func()) { r.fns = append(r.fns, fn) }

func (r *releaser) release() {
	r.once.Do(func() {
		for i := len(r.fns) - 1; i >= 0; i-- {
			r.fns[i]()
		}
	})
}

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
// При ошибке на любом шаге уже захваченные ресурсы освобождаются до возврата.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	if len(cfg.SQS.Queues) == 0 {
		return nil, func() {}, errors.New("no queues configured")
	}

	// Логгер (dev/prod режим и файл задаются конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLoggerWithOptions(logger.Options{
		IsProd:     cfg.Logger.IsProd,
		File:       cfg.Logger.File,
		MaxSizeMB:  cfg.Logger.MaxSizeMB,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAgeDays: cfg.Logger.MaxAgeDays,
	})
	if err != nil {
		return nil, func() {}, err
	}

	rel := &releaser{}
	rel.push(func() {
		// ошибка sync для stderr/stdout не критична
		_ = cleanupLogger()
	})

	fail := func(err error) (*App, Cleanup, error) {
		logg.Errorf(ctx, "bootstrap failed: %v", err)
		rel.release()
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	if cfg.Tracing.Enabled {
		shutdownTrace, tErr := telemetry.SetupTracing(ctx, telemetry.Config{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			rel.push(func() {
				if terr := shutdownTrace(context.Background()); terr != nil {
					logg.Warnf(ctx, "shutdown tracing: %v", terr)
				}
			})
		}
	}

	// Приёмник принятых записей.
	sink, releaseSink, err := buildSink(ctx, cfg, logg)
	if err != nil {
		return fail(err)
	}
	rel.push(releaseSink)
	logg.Infof(ctx, "aggregate sink=%s", cfg.Aggregator.Sink)

	// Сборка зависимостей доменного слоя.
	recordCache := cachemem.NewLRUCacheTTL(cfg.Cache.Capacity, cfg.Cache.TTL)
	aggregator := usecase.NewAggregateService(sink, recordCache, logg, usecase.AggregateOptions{
		SinkName:   cfg.Aggregator.Sink,
		Decompress: cfg.Aggregator.Decompress,
		Charset:    cfg.Aggregator.Charset,
	})

	// Общая конфигурация AWS; клиент и консьюмер — свои на каждую очередь.
	clientCfg := sqsClientConfig(cfg)
	awsCfg, err := sqs.LoadAWSConfig(ctx, &clientCfg)
	if err != nil {
		return fail(err)
	}

	consumers := make([]ports.MessageConsumer, 0, len(cfg.SQS.Queues))
	for _, queue := range cfg.SQS.Queues {
		client := sqs.NewClient(awsCfg, &clientCfg, logg)
		consumer := sqs.NewConsumer(&sqs.ConsumerConfig{
			QueueName:       queue,
			PollingInterval: cfg.SQS.PollingInterval,
			ProcessTimeout:  cfg.SQS.ProcessTimeout,
			DeleteTimeout:   cfg.SQS.DeleteTimeout,
			MaxReceiveRate:  cfg.SQS.MaxReceiveRate,
		}, client, aggregator, logg)
		consumers = append(consumers, consumer)

		rel.push(func() {
			if cErr := consumer.Close(); cErr != nil {
				logg.Warnf(ctx, "sqs consumer close queue=%s: %v", queue, cErr)
			}
		})
	}

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(aggregator, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		Consumers:       consumers,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	return app, rel.release, nil
}

func sqsClientConfig(cfg *config.Config) sqs.ClientConfig {
	return sqs.ClientConfig{
		Region:            cfg.SQS.Region,
		Endpoint:          cfg.SQS.Endpoint,
		AccessKeyID:       cfg.SQS.AccessKeyID,
		SecretAccessKey:   cfg.SQS.SecretAccessKey,
		WaitTimeSeconds:   cfg.SQS.WaitTimeSeconds,
		VisibilityTimeout: cfg.SQS.VisibilityTimeout,
	}
}

// Run — запускает HTTP-сервер и консьюмеров; ждёт отмены контекста или первой фоновой ошибки,
// останавливает остальных и возвращает фатальную ошибку (nil при обычной отмене).
func (a *App) Run(ctx context.Context) error {
	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	errCh := make(chan error, len(a.Consumers)+1)
	var wg sync.WaitGroup

	// Запуск консьюмеров: каждый в своей горутине, общего состояния нет.
	for i, consumer := range a.Consumers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.Logger.Infof(ctx, "sqs consumer #%d starting", i)
			err := consumer.Run(runCtx)
			if err == nil && runCtx.Err() == nil {
				// Run возвращает nil только по ошибке реализации: очередь перестала читаться
				err = ErrConsumerStopped
			}
			if err != nil {
				errCh <- fmt.Errorf("consumer #%d: %w", i, err)
			}
		}()
	}

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	var fatal error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Errorf(ctx, "background error: %v", err)
			fatal = err
		}
	}

	// Останавливаем оставшихся консьюмеров и ждём выхода из Run.
	cancelRun()
	wg.Wait()

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Закрытие клиентов очередей (повторный Close из Cleanup — no-op).
	for i, consumer := range a.Consumers {
		if err := consumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "sqs consumer #%d close error: %v", i, err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return fatal
}
