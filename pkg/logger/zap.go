package logger

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Gunvolt24/sqs_consumer/pkg/ctxmeta"
)

// Options — настройки логгера. Пустой File — писать только в stderr.
type Options struct {
	IsProd     bool
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

// NewZapLogger — dev/prod логгер в stderr.
func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	return NewZapLoggerWithOptions(Options{IsProd: isProd})
}

// NewZapLoggerWithOptions — как NewZapLogger, плюс дублирование в файл с ротацией (lumberjack).
func NewZapLoggerWithOptions(opts Options) (*ZapLogger, func() error, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if opts.IsProd {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, nil, err
	}

	var rotator *lumberjack.Logger
	if opts.File != "" {
		rotator = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   true,
		}
		// В файл всегда пишем JSON, уровень — как у основного логгера.
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(rotator), logger.Core())
		logger = logger.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
			return zapcore.NewTee(c, fileCore)
		}))
	}

	loggerWrap := &ZapLogger{
		base:   logger,
		sugar:  logger.Sugar(),
		isProd: opts.IsProd,
	}

	cleanup := func() error {
		syncErr := loggerWrap.base.Sync()
		if rotator != nil {
			return errors.Join(syncErr, rotator.Close())
		}
		return syncErr
	}
	return loggerWrap, cleanup, nil
}

func (z *ZapLogger) Debugf(ctx context.Context, format string, args ...any) {
	z.withContext(ctx).Debugf(format, args...)
}
func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.withContext(ctx).Infof(format, args...)
}
func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.withContext(ctx).Warnf(format, args...)
}
func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.withContext(ctx).Errorf(format, args...)
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }

// withContext добавляет к записи метаданные из контекста (request_id, message_id, queue, trace_id).
func (z *ZapLogger) withContext(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return z.sugar
	}
	fields := make([]any, 0, 8)
	if v, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		fields = append(fields, "request_id", v)
	}
	if v, ok := ctxmeta.MessageIDFromContext(ctx); ok {
		fields = append(fields, "message_id", v)
	}
	if v, ok := ctxmeta.QueueFromContext(ctx); ok {
		fields = append(fields, "queue", v)
	}
	if v, ok := ctxmeta.TraceIDFromContext(ctx); ok {
		fields = append(fields, "trace_id", v)
	}
	if len(fields) == 0 {
		return z.sugar
	}
	return z.sugar.With(fields...)
}
