package savedload

import (
	"loadboard/internal/entities"
)

func ToDomainLoad(l *SavedLoadRowDB) *entities.Load {
	if l == nil {
		return nil
	}

	return &entities.Load{
		ID:           l.ID,
		ShipperID:    l.ShipperID,
		Origin:       l.Origin,
		Destination:  l.Destination,
		Cargo:        l.Cargo,
		Equipment:    l.Equipment,
		Weight:       l.Weight,
		Rate:         l.Rate,
		PickupDate:   l.PickupDate,
		DeliveryDate: l.DeliveryDate,
		Status:       entities.LoadStatusType(l.Status),
		TruckerID:    l.TruckerID,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func ToDomainLoadList(rowsDB []SavedLoadRowDB) []entities.Load {
	if len(rowsDB) == 0 {
		return []entities.Load{}
	}

	result := make([]entities.Load, len(rowsDB))
	for i, rowDB := range rowsDB {
		result[i] = *ToDomainLoad(&rowDB)
	}
	return result
}
