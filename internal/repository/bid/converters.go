package bid

import (
	"loadboard/internal/entities"
)

func ToDomain(b *BidDB) *entities.Bid {
	if b == nil {
		return nil
	}

	return &entities.Bid{
		ID:        b.ID,
		LoadID:    b.LoadID,
		TruckerID: b.TruckerID,
		Price:     b.Price,
		Comment:   b.Comment,
		Status:    entities.BidStatusType(b.Status),
		CreatedAt: b.CreatedAt,
	}
}

func ToDomainList(bidsDB []BidDB) []entities.Bid {
	if len(bidsDB) == 0 {
		return []entities.Bid{}
	}

	result := make([]entities.Bid, len(bidsDB))
	for i, bidDB := range bidsDB {
		result[i] = *ToDomain(&bidDB)
	}
	return result
}
