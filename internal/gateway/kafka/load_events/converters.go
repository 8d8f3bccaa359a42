package load_events

import (
	"time"

	"loadboard/internal/entities"
)

type loadEventPayload struct {
	LoadID     int64  `json:"load_id"`
	Status     string `json:"status"`
	TruckerID  *int64 `json:"trucker_id,omitempty"`
	BidID      *int64 `json:"bid_id,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

func toPayload(event entities.LoadEvent) loadEventPayload {
	return loadEventPayload{
		LoadID:     event.LoadID,
		Status:     event.Status.String(),
		TruckerID:  event.TruckerID,
		BidID:      event.BidID,
		OccurredAt: event.OccurredAt.UTC().Format(time.RFC3339),
	}
}
