package bid_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"loadboard/internal/generated/dto"
	"loadboard/internal/pkg/middlewares/auth"
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

	var bidCreateDTO dto.BidCreate
	err := json.NewDecoder(r.Body).Decode(&bidCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	placement, err := h.service.PlaceBid(r.Context(), principal, bidCreateDTO.LoadID, bidCreateDTO.Price, bidCreateDTO.Comment)
	if err != nil {
		switch {
		case errors.Is(err, bid.ErrInvalidLoadID),
			errors.Is(err, bid.ErrInvalidPrice):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, bid.ErrRoleCannotBid):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, load.ErrLoadNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, bid.ErrLoadNotOpen):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.BidCreateResponse{
		Bid: dto.Bid{
			ID:        placement.Bid.ID,
			LoadID:    placement.Bid.LoadID,
			TruckerID: placement.Bid.TruckerID,
			Price:     placement.Bid.Price,
			Comment:   placement.Bid.Comment,
			Status:    placement.Bid.Status.String(),
		},
		SupersededBid: placement.SupersededID,
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
