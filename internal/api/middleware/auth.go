package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SC-BookingService/internal/api/handlers"
	"github.com/m04kA/SC-BookingService/internal/domain"
)

type identityKey struct{}

// Auth извлекает идентичность пользователя из заголовков X-User-ID и
// X-User-Role, проставленных API-гейтвеем. Запросы без корректного
// X-User-ID отклоняются с 401. Роль по умолчанию - client.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "требуется заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный заголовок X-User-ID")
			return
		}

		role, ok := domain.ParseRole(r.Header.Get("X-User-Role"))
		if !ok {
			role = domain.RoleClient
		}

		identity := domain.Identity{UserID: userID, Role: role}
		ctx := context.WithValue(r.Context(), identityKey{}, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFrom возвращает идентичность пользователя из контекста запроса
func IdentityFrom(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(domain.Identity)
	return identity, ok
}
