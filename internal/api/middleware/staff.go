package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-PrepRoomService/internal/api/handlers"
)

// StaffIDHeader заголовок с ID сотрудника, выполняющего запрос
const StaffIDHeader = "X-Staff-ID"

const msgMissingStaffID = "не указан заголовок X-Staff-ID"

type staffIDKey struct{}

// StaffID кладёт ID сотрудника из заголовка в контекст.
// Это идентификация вызывающего, не аутентификация.
func StaffID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staffID := strings.TrimSpace(r.Header.Get(StaffIDHeader))
		if staffID == "" {
			handlers.RespondUnauthorized(w, msgMissingStaffID)
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey{}, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetStaffID возвращает ID сотрудника из контекста
func GetStaffID(ctx context.Context) (string, bool) {
	staffID, ok := ctx.Value(staffIDKey{}).(string)
	return staffID, ok && staffID != ""
}

// WithStaffID кладёт ID сотрудника в контекст (используется в тестах handlers)
func WithStaffID(ctx context.Context, staffID string) context.Context {
	return context.WithValue(ctx, staffIDKey{}, staffID)
}
