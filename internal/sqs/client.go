package sqs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/google/uuid"

	"github.com/Gunvolt24/sqs_consumer/internal/domain"
	"github.com/Gunvolt24/sqs_consumer/internal/ports"
)

// ErrClientClosed — вызов после Shutdown.
var ErrClientClosed = errors.New("sqs client is shut down")

// Проверка, что Client удовлетворяет контракту, который ждёт Consumer.
var _ queueClient = (*Client)(nil)

// sqsAPI — подмножество операций SQS, которое нужно клиенту.
type sqsAPI interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
	SendMessageBatch(ctx context.Context, params *sqs.SendMessageBatchInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageBatchOutput, error)
}

// Client — клиент очереди поверх AWS SQS: resolve, receive-batch, delete, shutdown.
// Все ошибки оборачиваются в domain.ErrTransport.
type Client struct {
	api               sqsAPI
	waitTimeSeconds   int32
	visibilityTimeout int32
	log               ports.Logger
	newEntryID        func() string

	closed    atomic.Bool
	closeOnce sync.Once
}

// NewClient — конструктор поверх готового aws.Config.
func NewClient(awsCfg aws.Config, cfg *ClientConfig, log ports.Logger) *Client {
	return newClient(sqs.NewFromConfig(awsCfg, cfg.clientOptions()...), cfg, log)
}

func newClient(api sqsAPI, cfg *ClientConfig, log ports.Logger) *Client {
	n := cfg.normalized()
	return &Client{
		api:               api,
		waitTimeSeconds:   n.WaitTimeSeconds,
		visibilityTimeout: n.VisibilityTimeout,
		log:               log,
		newEntryID:        func() string { return uuid.NewString() },
	}
}

// Resolve возвращает URL очереди по имени. Если передан уже URL — отдаём как есть.
func (c *Client) Resolve(ctx context.Context, queueName string) (string, error) {
	if err := c.checkOpen(); err != nil {
		return "", err
	}
	name := strings.TrimSpace(queueName)
	if name == "" {
		return "", fmt.Errorf("%w: queue name is empty", domain.ErrTransport)
	}
	if strings.HasPrefix(name, "https://") || strings.HasPrefix(name, "http://") {
		return name, nil
	}

	out, err := c.api.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{QueueName: aws.String(name)})
	if err != nil {
		return "", fmt.Errorf("%w: resolve queue %q: %w", domain.ErrTransport, name, err)
	}
	if out == nil || out.QueueUrl == nil || *out.QueueUrl == "" {
		return "", fmt.Errorf("%w: resolve queue %q: empty url", domain.ErrTransport, name)
	}
	return *out.QueueUrl, nil
}

// ReceiveBatch забирает до maxMessages сообщений (SQS отдаёт максимум 10 за вызов).
// Пустой срез — очередь пуста; это не ошибка.
func (c *Client) ReceiveBatch(ctx context.Context, queueURL string, maxMessages int) ([]domain.Message, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	if maxMessages < 1 {
		maxMessages = 1
	}
	if maxMessages > MaxBatchSize {
		maxMessages = MaxBatchSize
	}

	out, err := c.api.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(queueURL),
		MaxNumberOfMessages: int32(maxMessages),
		WaitTimeSeconds:     c.waitTimeSeconds,
		VisibilityTimeout:   c.visibilityTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: receive messages: %w", domain.ErrTransport, err)
	}
	if out == nil {
		return nil, nil
	}

	messages := make([]domain.Message, 0, len(out.Messages))
	for _, msg := range out.Messages {
		// Без handle сообщение невозможно удалить — пропускаем, SQS вернёт его позже.
		if msg.MessageId == nil || msg.ReceiptHandle == nil || msg.Body == nil {
			c.log.Warnf(ctx, "skip malformed sqs message id=%s", aws.ToString(msg.MessageId))
			continue
		}
		messages = append(messages, domain.Message{
			ID:            *msg.MessageId,
			ReceiptHandle: *msg.ReceiptHandle,
			Body:          *msg.Body,
		})
	}
	return messages, nil
}

// Delete удаляет конкретную доставку по receipt handle.
func (c *Client) Delete(ctx context.Context, queueURL, receiptHandle string) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	_, err := c.api.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: aws.String(receiptHandle),
	})
	if err != nil {
		return fmt.Errorf("%w: delete message: %w", domain.ErrTransport, err)
	}
	return nil
}

// SendBatch отправляет тела страницами по MaxBatchSize. Возвращает число отправленных;
// при частичном отказе — ошибку с первым отказом страницы.
func (c *Client) SendBatch(ctx context.Context, queueURL string, bodies []string) (int, error) {
	if err := c.checkOpen(); err != nil {
		return 0, err
	}

	sent := 0
	for start := 0; start < len(bodies); start += MaxBatchSize {
		end := min(start+MaxBatchSize, len(bodies))

		entries := make([]types.SendMessageBatchRequestEntry, 0, end-start)
		for _, body := range bodies[start:end] {
			entries = append(entries, types.SendMessageBatchRequestEntry{
				Id:          aws.String(c.newEntryID()),
				MessageBody: aws.String(body),
			})
		}

		out, err := c.api.SendMessageBatch(ctx, &sqs.SendMessageBatchInput{
			QueueUrl: aws.String(queueURL),
			Entries:  entries,
		})
		if err != nil {
			return sent, fmt.Errorf("%w: send batch: %w", domain.ErrTransport, err)
		}
		sent += len(out.Successful)
		if len(out.Failed) > 0 {
			f := out.Failed[0]
			return sent, fmt.Errorf("%w: send batch: %d of %d failed, first id=%s code=%s: %s",
				domain.ErrTransport, len(out.Failed), len(entries),
				aws.ToString(f.Id), aws.ToString(f.Code), aws.ToString(f.Message))
		}
	}
	return sent, nil
}

// Shutdown — освобождает клиента. Повторные вызовы — no-op; после него все операции
// возвращают ErrClientClosed.
func (c *Client) Shutdown() error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
	})
	return nil
}

func (c *Client) checkOpen() error {
	if c.closed.Load() {
		return fmt.Errorf("%w: %w", domain.ErrTransport, ErrClientClosed)
	}
	return nil
}
