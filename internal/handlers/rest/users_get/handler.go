package users_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"loadboard/internal/generated/dto"
	"loadboard/internal/pkg/middlewares/auth"
	"loadboard/internal/service/user"
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

	userEntities, err := h.service.ListUsers(r.Context(), principal)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrAdminOnly):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	userDTOs := make([]dto.User, len(userEntities))
	for i, userEntity := range userEntities {
		userDTOs[i].ID = userEntity.ID
		userDTOs[i].Role = userEntity.Role.String()
		userDTOs[i].Name = userEntity.Name
		userDTOs[i].Email = userEntity.Email
		userDTOs[i].Company = userEntity.Company
		userDTOs[i].Phone = userEntity.Phone
		userDTOs[i].MCNumber = userEntity.MCNumber
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(userDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
