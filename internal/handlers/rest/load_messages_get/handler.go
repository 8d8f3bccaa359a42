package load_messages_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"loadboard/internal/generated/dto"
	"loadboard/internal/pkg/middlewares/auth"
	"loadboard/internal/service/load"
	"loadboard/internal/service/message"
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
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	idStr := mux.Vars(r)["id"]
	loadID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	messageEntities, err := h.service.Thread(r.Context(), principal, loadID)
	if err != nil {
		switch {
		case errors.Is(err, message.ErrInvalidLoadID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, message.ErrNotParticipant):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, load.ErrLoadNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	messageDTOs := make([]dto.Message, len(messageEntities))
	for i, messageEntity := range messageEntities {
		messageDTOs[i].ID = messageEntity.ID
		messageDTOs[i].LoadID = messageEntity.LoadID
		messageDTOs[i].SenderID = messageEntity.SenderID
		messageDTOs[i].RecipientID = messageEntity.RecipientID
		messageDTOs[i].Body = messageEntity.Body
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(messageDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
