package saved_loads_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"loadboard/internal/generated/dto"
	"loadboard/internal/pkg/middlewares/auth"
	"loadboard/internal/service/savedload"
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

	loadEntities, err := h.service.ListSaved(r.Context(), principal)
	if err != nil {
		switch {
		case errors.Is(err, savedload.ErrRoleCannotSave):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	loadDTOs := make([]dto.Load, len(loadEntities))
	for i, loadEntity := range loadEntities {
		loadDTOs[i].ID = loadEntity.ID
		loadDTOs[i].ShipperID = loadEntity.ShipperID
		loadDTOs[i].Origin = loadEntity.Origin
		loadDTOs[i].Destination = loadEntity.Destination
		loadDTOs[i].Cargo = loadEntity.Cargo
		loadDTOs[i].Equipment = loadEntity.Equipment
		loadDTOs[i].Weight = loadEntity.Weight
		loadDTOs[i].Rate = loadEntity.Rate
		loadDTOs[i].PickupDate = loadEntity.PickupDate
		loadDTOs[i].DeliveryDate = loadEntity.DeliveryDate
		loadDTOs[i].Status = loadEntity.Status.String()
		loadDTOs[i].TruckerID = loadEntity.TruckerID
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(loadDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
