//go:build integration

package testutil

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// UniqueTopicAndGroup — уникальные имена топика и группы читателя для одного теста.
func UniqueTopicAndGroup(base string) (topic, group string) {
	suffix := UniqSuffix()
	return base + "-" + suffix, base + "-reader-" + suffix
}

// EnsureTopic — создаёт топик с одной партицией (уже существующий — не ошибка)
// и ждёт, пока он появится в метаданных кластера.
func EnsureTopic(ctx context.Context, broker, topic string) error {
	client := &kafka.Client{Addr: kafka.TCP(brokerAddr(broker)), Timeout: 10 * time.Second}

	resp, err := client.CreateTopics(ctx, &kafka.CreateTopicsRequest{
		Topics: []kafka.TopicConfig{{Topic: topic, NumPartitions: 1, ReplicationFactor: 1}},
	})
	if err != nil {
		return fmt.Errorf("create topic %q: %w", topic, err)
	}
	if tErr := resp.Errors[topic]; tErr != nil && !errors.Is(tErr, kafka.TopicAlreadyExists) {
		return fmt.Errorf("create topic %q: %w", topic, tErr)
	}

	return waitTopicReady(ctx, client, topic)
}

// brokerAddr снимает схему "PLAINTEXT://", которую отдаёт redpanda-контейнер.
func brokerAddr(raw string) string {
	first := strings.TrimSpace(strings.Split(raw, ",")[0])
	if u, err := url.Parse(first); err == nil && u.Host != "" {
		return u.Host
	}
	return first
}

func waitTopicReady(ctx context.Context, client *kafka.Client, topic string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var lastErr error
	for {
		meta, err := client.Metadata(ctx, &kafka.MetadataRequest{Topics: []string{topic}})
		switch {
		case err != nil:
			lastErr = err
		case len(meta.Topics) == 1 && meta.Topics[0].Error == nil && len(meta.Topics[0].Partitions) > 0:
			return nil
		case len(meta.Topics) == 1:
			lastErr = meta.Topics[0].Error
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("topic %q not ready: %w", topic, errors.Join(ctx.Err(), lastErr))
		case <-time.After(200 * time.Millisecond):
		}
	}
}
