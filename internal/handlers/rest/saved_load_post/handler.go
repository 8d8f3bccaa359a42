package saved_load_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"loadboard/internal/generated/dto"
	"loadboard/internal/pkg/middlewares/auth"
	"loadboard/internal/service/savedload"
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

	var toggleDTO dto.SavedLoadToggle
	err := json.NewDecoder(r.Body).Decode(&toggleDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	saved, err := h.service.Toggle(r.Context(), principal, toggleDTO.LoadID)
	if err != nil {
		switch {
		case errors.Is(err, savedload.ErrInvalidLoadID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, savedload.ErrRoleCannotSave):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, savedload.ErrLoadNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.SavedLoadToggleResponse{
		LoadID: toggleDTO.LoadID,
		Saved:  saved,
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
