package ports

import "context"

// MessageConsumer — долгоживущий цикл чтения очереди.
// Run возвращает управление только при отмене контекста или фатальной ошибке.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
