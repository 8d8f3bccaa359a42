package bid_withdraw_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"loadboard/internal/generated/dto"
	"loadboard/internal/pkg/middlewares/auth"
	"loadboard/internal/service/bid"
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

	var bidWithdrawDTO dto.BidWithdraw
	err := json.NewDecoder(r.Body).Decode(&bidWithdrawDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	bidEntity, err := h.service.WithdrawBid(r.Context(), principal, bidWithdrawDTO.BidID)
	if err != nil {
		switch {
		case errors.Is(err, bid.ErrInvalidBidID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, bid.ErrNotBidOwner):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, bid.ErrBidNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, bid.ErrBidNotPending):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Bid{
		ID:        bidEntity.ID,
		LoadID:    bidEntity.LoadID,
		TruckerID: bidEntity.TruckerID,
		Price:     bidEntity.Price,
		Comment:   bidEntity.Comment,
		Status:    bidEntity.Status.String(),
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
