package auth

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"loadboard/internal/entities"
	"loadboard/pkg/logger"
)

const bearerPrefix = "Bearer "

// Middleware проверяет JWT из Authorization и кладет Principal в контекст.
// Identity-контекст внешний: токены выпускает он, мы только проверяем подпись.
func Middleware(log handlerLogger, secret string) func(http.Handler) http.Handler {
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				reject(log, w, r, "missing_token")
				return
			}

			principal, err := parseToken(strings.TrimPrefix(header, bearerPrefix), key)
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Warn("invalid token")
				reject(log, w, r, "invalid_token")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithPrincipal(r.Context(), *principal)))
		})
	}
}

func parseToken(raw string, key []byte) (*entities.Principal, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type: %T", token.Claims)
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, fmt.Errorf("subject claim: %w", err)
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("subject claim %q is not a user id: %w", sub, err)
	}

	roleStr, _ := claims["role"].(string)
	role := entities.RoleType(roleStr)
	switch role {
	case entities.RoleShipper, entities.RoleTrucker, entities.RoleAdmin:
	default:
		return nil, fmt.Errorf("unknown role claim: %q", roleStr)
	}

	return &entities.Principal{UserID: userID, Role: role}, nil
}

func reject(log handlerLogger, w http.ResponseWriter, r *http.Request, reason string) {
	AuthRejectedTotal.WithLabelValues(reason).Inc()

	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)

	_, err := w.Write([]byte(`{"error":"Unauthorized","message":"A valid bearer token is required."}`))
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("path", r.URL.Path),
		).Error("failed to write auth response")
	}
}
