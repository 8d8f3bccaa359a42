package loads_get

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"loadboard/internal/entities"
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
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	loadEntities, err := h.service.ListLoads(r.Context(), *filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
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

func parseFilter(query url.Values) (*entities.LoadFilter, error) {
	var filter entities.LoadFilter

	if origin := query.Get("origin"); origin != "" {
		filter.Origin = &origin
	}
	if destination := query.Get("destination"); destination != "" {
		filter.Destination = &destination
	}
	if equipment := query.Get("equipment"); equipment != "" {
		filter.Equipment = &equipment
	}
	if status := query.Get("status"); status != "" {
		statusType := entities.LoadStatusType(status)
		filter.Status = &statusType
	}

	if minRateStr := query.Get("min_rate"); minRateStr != "" {
		minRate, err := strconv.ParseFloat(minRateStr, 64)
		if err != nil {
			return nil, err
		}
		filter.MinRate = &minRate
	}
	if maxWeightStr := query.Get("max_weight"); maxWeightStr != "" {
		maxWeight, err := strconv.ParseFloat(maxWeightStr, 64)
		if err != nil {
			return nil, err
		}
		filter.MaxWeight = &maxWeight
	}
	if shipperIDStr := query.Get("shipper_id"); shipperIDStr != "" {
		shipperID, err := strconv.ParseInt(shipperIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		filter.ShipperID = &shipperID
	}
	if truckerIDStr := query.Get("trucker_id"); truckerIDStr != "" {
		truckerID, err := strconv.ParseInt(truckerIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		filter.TruckerID = &truckerID
	}

	return &filter, nil
}
