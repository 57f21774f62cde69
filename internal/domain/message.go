package domain

import "time"

// Message — одна доставка сообщения из очереди.
// ReceiptHandle выдаётся на каждую доставку и нужен для удаления именно её.
type Message struct {
	ID            string
	ReceiptHandle string
	Body          string
}

// Record — тело сообщения, принятое агрегатором.
type Record struct {
	MessageID  string    `json:"message_id"`
	Queue      string    `json:"queue"`
	Body       string    `json:"body"`
	ReceivedAt time.Time `json:"received_at"`
}
