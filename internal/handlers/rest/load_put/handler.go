package load_put

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

	var loadUpdateDTO dto.LoadUpdate
	err := json.NewDecoder(r.Body).Decode(&loadUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	loadModifyEntity := entities.LoadModify{
		ID: &loadUpdateDTO.ID,
	}

	// Опциональные параметры
	if loadUpdateDTO.Origin != nil {
		loadModifyEntity.Origin = loadUpdateDTO.Origin
	}
	if loadUpdateDTO.Destination != nil {
		loadModifyEntity.Destination = loadUpdateDTO.Destination
	}
	if loadUpdateDTO.Cargo != nil {
		loadModifyEntity.Cargo = loadUpdateDTO.Cargo
	}
	if loadUpdateDTO.Equipment != nil {
		loadModifyEntity.Equipment = loadUpdateDTO.Equipment
	}
	if loadUpdateDTO.Weight != nil {
		loadModifyEntity.Weight = loadUpdateDTO.Weight
	}
	if loadUpdateDTO.Rate != nil {
		loadModifyEntity.Rate = loadUpdateDTO.Rate
	}
	if loadUpdateDTO.PickupDate != nil {
		loadModifyEntity.PickupDate = loadUpdateDTO.PickupDate
	}
	if loadUpdateDTO.DeliveryDate != nil {
		loadModifyEntity.DeliveryDate = loadUpdateDTO.DeliveryDate
	}

	res, err := h.service.UpdateTerms(r.Context(), principal, loadModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, load.ErrMissingRequiredFields),
			errors.Is(err, load.ErrInvalidLoadID),
			errors.Is(err, load.ErrInvalidOrigin),
			errors.Is(err, load.ErrInvalidDestination),
			errors.Is(err, load.ErrInvalidRate),
			errors.Is(err, load.ErrInvalidWeight):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, load.ErrNotOwner):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, load.ErrLoadNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, load.ErrLoadNotOpen):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Load{
		ID:           res.ID,
		ShipperID:    res.ShipperID,
		Origin:       res.Origin,
		Destination:  res.Destination,
		Cargo:        res.Cargo,
		Equipment:    res.Equipment,
		Weight:       res.Weight,
		Rate:         res.Rate,
		PickupDate:   res.PickupDate,
		DeliveryDate: res.DeliveryDate,
		Status:       res.Status.String(),
		TruckerID:    res.TruckerID,
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
