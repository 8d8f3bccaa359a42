package load

import (
	"loadboard/internal/entities"
)

func ToDomain(l *LoadDB) *entities.Load {
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

func FromDomainModify(loadModify *entities.LoadModify) *LoadModifyDB {
	if loadModify == nil {
		return nil
	}

	return &LoadModifyDB{
		ID:           loadModify.ID,
		ShipperID:    loadModify.ShipperID,
		Origin:       loadModify.Origin,
		Destination:  loadModify.Destination,
		Cargo:        loadModify.Cargo,
		Equipment:    loadModify.Equipment,
		Weight:       loadModify.Weight,
		Rate:         loadModify.Rate,
		PickupDate:   loadModify.PickupDate,
		DeliveryDate: loadModify.DeliveryDate,
	}
}

func ToDomainList(loadsDB []LoadDB) []entities.Load {
	if len(loadsDB) == 0 {
		return []entities.Load{}
	}

	result := make([]entities.Load, len(loadsDB))
	for i, loadDB := range loadsDB {
		result[i] = *ToDomain(&loadDB)
	}
	return result
}
