package load_complete_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"loadboard/internal/generated/dto"
	"loadboard/internal/pkg/middlewares/auth"
	"loadboard/internal/service/assignment"
	"loadboard/internal/service/load"
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
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var loadCompleteDTO dto.LoadTransition
	err := json.NewDecoder(r.Body).Decode(&loadCompleteDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	loadEntity, err := h.service.MarkCompleted(r.Context(), principal, loadCompleteDTO.LoadID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidLoadID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrNotParticipant):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, load.ErrLoadNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrLoadNotInTransit),
			errors.Is(err, assignment.ErrLoadTerminal):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Load{
		ID:           loadEntity.ID,
		ShipperID:    loadEntity.ShipperID,
		Origin:       loadEntity.Origin,
		Destination:  loadEntity.Destination,
		Cargo:        loadEntity.Cargo,
		Equipment:    loadEntity.Equipment,
		Weight:       loadEntity.Weight,
		Rate:         loadEntity.Rate,
		PickupDate:   loadEntity.PickupDate,
		DeliveryDate: loadEntity.DeliveryDate,
		Status:       loadEntity.Status.String(),
		TruckerID:    loadEntity.TruckerID,
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
