package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	RoleStaff = "staff"
	RoleAdmin = "admin"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"
)

// Auth читает идентификатор пользователя из X-User-ID.
// Сессии и токены выдаёт внешний шлюз, сюда приходит уже проверенный ID.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		role := strings.ToLower(strings.TrimSpace(r.Header.Get(HeaderUserRole)))
		if role != "" {
			ctx = context.WithValue(ctx, userRoleKey, role)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireStaff пропускает только персонал (staff или admin). Ставится после Auth.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsStaff(r.Context()) {
			handlers.RespondForbidden(w, "доступ только для персонала")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID возвращает ID пользователя, установленный Auth
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// IsStaff проверяет роль пользователя
func IsStaff(ctx context.Context) bool {
	role, _ := ctx.Value(userRoleKey).(string)
	return role == RoleStaff || role == RoleAdmin
}
