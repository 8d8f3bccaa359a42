package load_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"loadboard/internal/entities"
	"loadboard/internal/generated/dto"
	"loadboard/internal/pkg/middlewares/auth"
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

	var loadCreateDTO dto.LoadCreate
	err := json.NewDecoder(r.Body).Decode(&loadCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	loadModifyEntity := entities.LoadModify{
		Origin:       &loadCreateDTO.Origin,
		Destination:  &loadCreateDTO.Destination,
		Cargo:        &loadCreateDTO.Cargo,
		Equipment:    &loadCreateDTO.Equipment,
		Weight:       &loadCreateDTO.Weight,
		Rate:         &loadCreateDTO.Rate,
		PickupDate:   &loadCreateDTO.PickupDate,
		DeliveryDate: &loadCreateDTO.DeliveryDate,
	}

	loadEntity, err := h.service.CreateLoad(r.Context(), principal, loadModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, load.ErrMissingRequiredFields),
			errors.Is(err, load.ErrInvalidOrigin),
			errors.Is(err, load.ErrInvalidDestination),
			errors.Is(err, load.ErrInvalidRate),
			errors.Is(err, load.ErrInvalidWeight):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, load.ErrRoleCannotPost):
			w.WriteHeader(http.StatusForbidden)
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
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
