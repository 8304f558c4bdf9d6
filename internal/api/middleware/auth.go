package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gymsys/GMS-ScheduleService/internal/api/handlers"
	"github.com/gymsys/GMS-ScheduleService/internal/domain"
)

type contextKey string

const actorContextKey contextKey = "actor"

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"

	msgMissingAuthHeaders = "faltan las cabeceras de autenticación"
	msgInvalidUserID      = "identificador de usuario inválido"
	msgInvalidRole        = "rol de usuario inválido"
)

// Auth извлекает пользователя из заголовков шлюза и кладет его в контекст.
// Аутентификацию выполняет шлюз; сервис доверяет его заголовкам.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := r.Header.Get(headerUserID)
		rawRole := r.Header.Get(headerUserRole)
		if rawID == "" || rawRole == "" {
			handlers.RespondUnauthorized(w, msgMissingAuthHeaders)
			return
		}

		userID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		role := domain.Role(rawRole)
		if !role.IsValid() {
			handlers.RespondUnauthorized(w, msgInvalidRole)
			return
		}

		actor := domain.Actor{UserID: userID, Role: role}
		ctx := context.WithValue(r.Context(), actorContextKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetActor возвращает пользователя из контекста запроса
func GetActor(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey).(domain.Actor)
	return actor, ok
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	actor, ok := GetActor(ctx)
	if !ok {
		return 0, false
	}
	return actor.UserID, true
}
