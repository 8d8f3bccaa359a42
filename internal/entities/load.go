package entities

import "time"

type Load struct {
	ID           int64
	ShipperID    int64
	Origin       string
	Destination  string
	Cargo        string
	Equipment    string
	Weight       float64
	Rate         float64
	PickupDate   string
	DeliveryDate string
	Status       LoadStatusType

	// TruckerID не nil только в статусах assigned / in_transit / completed.
	TruckerID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

type LoadStatusType string

const (
	LoadOpen      LoadStatusType = "open"
	LoadAssigned  LoadStatusType = "assigned"
	LoadInTransit LoadStatusType = "in_transit"
	LoadCompleted LoadStatusType = "completed"
	LoadCancelled LoadStatusType = "cancelled"
)

func (s LoadStatusType) String() string {
	return string(s)
}

// Terminal сообщает, допускает ли статус дальнейшие переходы.
func (s LoadStatusType) Terminal() bool {
	return s == LoadCompleted || s == LoadCancelled
}

// LoadModify - частичное изменение груза: nil-поле не трогается.
type LoadModify struct {
	ID           *int64
	ShipperID    *int64
	Origin       *string
	Destination  *string
	Cargo        *string
	Equipment    *string
	Weight       *float64
	Rate         *float64
	PickupDate   *string
	DeliveryDate *string
}

// LoadFilter - параметры поиска по доске (из строки запроса GET /loads).
type LoadFilter struct {
	Origin      *string
	Destination *string
	Equipment   *string
	MinRate     *float64
	MaxWeight   *float64
	Status      *LoadStatusType
	ShipperID   *int64
	TruckerID   *int64
}
