package entities

import "time"

// Message - сообщение в треде конкретного груза. Отправитель и получатель
// обязаны быть сторонами груза (владелец, назначенный или ставивший
// перевозчик) либо админом.
type Message struct {
	ID          int64
	LoadID      int64
	SenderID    int64
	RecipientID int64
	Body        string
	CreatedAt   time.Time
}
