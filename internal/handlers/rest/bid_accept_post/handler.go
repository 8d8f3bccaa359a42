package bid_accept_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"loadboard/internal/generated/dto"
	"loadboard/internal/pkg/middlewares/auth"
	"loadboard/internal/service/assignment"
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

	var bidAcceptDTO dto.BidAccept
	err := json.NewDecoder(r.Body).Decode(&bidAcceptDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignmentEntity, err := h.service.AcceptBid(r.Context(), principal, bidAcceptDTO.LoadID, bidAcceptDTO.BidID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidLoadID),
			errors.Is(err, assignment.ErrInvalidBidID),
			errors.Is(err, assignment.ErrBidLoadMismatch):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrNotOwner):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, load.ErrLoadNotFound),
			errors.Is(err, bid.ErrBidNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrLoadNotOpen),
			errors.Is(err, assignment.ErrLoadTerminal),
			errors.Is(err, assignment.ErrBidNotPending):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.BidAcceptResponse{
		AcceptedBidID: assignmentEntity.AcceptedBid.ID,
		LoadID:        assignmentEntity.Load.ID,
		RejectedBids:  assignmentEntity.RejectedBids,
		Status:        assignmentEntity.Load.Status.String(),
		TruckerID:     assignmentEntity.AcceptedBid.TruckerID,
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
