package kafka

import (
	"time"

	"github.com/segmentio/kafka-go"
)

type PublisherConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// writer — kafka.Writer с ключевым балансировщиком: записи одного сообщения
// попадают в одну партицию.
func (c *PublisherConfig) writer() *kafka.Writer {
	wt := c.WriteTimeout
	if wt <= 0 {
		wt = 10 * time.Second
	}

	return &kafka.Writer{
		Addr:                   kafka.TCP(c.Brokers...),
		Topic:                  c.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		WriteTimeout:           wt,
		AllowAutoTopicCreation: true,
	}
}
