package load

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type LoadDB struct {
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
	Status       string
	TruckerID    *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type LoadModifyDB struct {
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
