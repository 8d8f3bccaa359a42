package load_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"loadboard/internal/generated/dto"
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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	loadEntity, err := h.service.GetLoad(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, load.ErrLoadNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, load.ErrInvalidLoadID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	loadDTO := dto.Load{
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
	err = json.NewEncoder(w).Encode(loadDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
