package entities

import "time"

// LoadEvent - событие жизненного цикла груза для внешней шины.
// Публикуется после коммита перехода, best-effort.
type LoadEvent struct {
	LoadID     int64
	Status     LoadStatusType
	TruckerID  *int64
	BidID      *int64
	OccurredAt time.Time
}

type BoardStats struct {
	Users       int64
	Loads       int64
	OpenLoads   int64
	Bids        int64
	PendingBids int64
}
