package message_post

import (
	"encoding/json"
	"errors"
	"net/http"

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

	var messageCreateDTO dto.MessageCreate
	err := json.NewDecoder(r.Body).Decode(&messageCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	messageEntity, err := h.service.Send(r.Context(), principal, messageCreateDTO.LoadID, messageCreateDTO.RecipientID, messageCreateDTO.Body)
	if err != nil {
		switch {
		case errors.Is(err, message.ErrInvalidLoadID),
			errors.Is(err, message.ErrInvalidRecipientID),
			errors.Is(err, message.ErrEmptyBody):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, message.ErrNotParticipant):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, message.ErrRecipientNotFound),
			errors.Is(err, load.ErrLoadNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Message{
		ID:          messageEntity.ID,
		LoadID:      messageEntity.LoadID,
		SenderID:    messageEntity.SenderID,
		RecipientID: messageEntity.RecipientID,
		Body:        messageEntity.Body,
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
