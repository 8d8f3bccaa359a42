package entities

// Assignment - результат назначения перевозчика на груз через принятие ставки.
type Assignment struct {
	Load         Load
	AcceptedBid  Bid
	RejectedBids int64
}
