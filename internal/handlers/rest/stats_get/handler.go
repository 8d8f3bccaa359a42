package stats_get

import (
	"encoding/json"
	"net/http"

	"loadboard/internal/generated/dto"
	"loadboard/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	statsEntity, err := h.service.BoardStats(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.BoardStats{
		Users:       statsEntity.Users,
		Loads:       statsEntity.Loads,
		OpenLoads:   statsEntity.OpenLoads,
		Bids:        statsEntity.Bids,
		PendingBids: statsEntity.PendingBids,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
