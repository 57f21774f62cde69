package domain

import "errors"

var (
	// ErrTransport — сбой клиента очереди (receive/delete/shutdown). Фатален для цикла.
	ErrTransport = errors.New("transport error")

	// ErrAggregation — агрегатор отклонил тело сообщения. Сообщение не удаляется
	// и вернётся в очередь после visibility timeout.
	ErrAggregation = errors.New("aggregation error")
)
