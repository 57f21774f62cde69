package ports

import "context"

// Aggregator — потребитель тел сообщений. Ошибка означает, что тело не принято.
type Aggregator interface {
	Aggregate(ctx context.Context, body string) error
}
