package load_bids_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"loadboard/internal/generated/dto"
	"loadboard/internal/service/bid"
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
	loadID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	bidEntities, err := h.service.ListBidsForLoad(r.Context(), loadID)
	if err != nil {
		switch {
		case errors.Is(err, bid.ErrInvalidLoadID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, load.ErrLoadNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	bidDTOs := make([]dto.Bid, len(bidEntities))
	for i, bidEntity := range bidEntities {
		bidDTOs[i].ID = bidEntity.ID
		bidDTOs[i].LoadID = bidEntity.LoadID
		bidDTOs[i].TruckerID = bidEntity.TruckerID
		bidDTOs[i].Price = bidEntity.Price
		bidDTOs[i].Comment = bidEntity.Comment
		bidDTOs[i].Status = bidEntity.Status.String()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(bidDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
