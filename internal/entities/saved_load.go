package entities

import "time"

// SavedLoad - закладка пользователя на груз, без своего жизненного цикла.
type SavedLoad struct {
	UserID    int64
	LoadID    int64
	CreatedAt time.Time
}
