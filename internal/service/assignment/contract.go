//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"loadboard/internal/entities"
)

type LoadRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Load, error)

	// AssignIfOpen назначает перевозчика одним условным UPDATE ... WHERE status = 'open'.
	// Этот UPDATE - точка сериализации гонки двух одновременных принятий.
	AssignIfOpen(ctx context.Context, loadID, truckerID int64) (*entities.Load, error)

	// TransitionStatus переводит груз from -> to одним условным UPDATE.
	TransitionStatus(ctx context.Context, loadID int64, from, to entities.LoadStatusType) (*entities.Load, error)

	// CancelOpenOrAssigned отменяет груз и снимает перевозчика, если груз open или assigned.
	CancelOpenOrAssigned(ctx context.Context, loadID int64) (*entities.Load, error)
}

type BidLedger interface {
	GetByID(ctx context.Context, id int64) (*entities.Bid, error)
	AcceptIfPending(ctx context.Context, bidID int64) (*entities.Bid, error)
	RejectOtherPending(ctx context.Context, loadID, acceptedBidID int64) (int64, error)
	RejectAccepted(ctx context.Context, loadID int64) error
}

// EventPublisher уведомляет внешнюю шину о переходе груза, после коммита.
type EventPublisher interface {
	Publish(ctx context.Context, event entities.LoadEvent)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
