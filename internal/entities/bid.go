package entities

import "time"

type Bid struct {
	ID        int64
	LoadID    int64
	TruckerID int64
	Price     float64
	Comment   string
	Status    BidStatusType
	CreatedAt time.Time
}

type BidStatusType string

const (
	BidPending   BidStatusType = "pending"
	BidAccepted  BidStatusType = "accepted"
	BidRejected  BidStatusType = "rejected"
	BidWithdrawn BidStatusType = "withdrawn"
)

func (s BidStatusType) String() string {
	return string(s)
}

// BidPlacement - результат размещения ставки: новая ставка плюс id
// предыдущей pending-ставки этого же перевозчика, если её пришлось отозвать.
type BidPlacement struct {
	Bid          Bid
	SupersededID *int64
}
