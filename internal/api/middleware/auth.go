// Package middleware промежуточные обработчики HTTP-слоя
package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bmc-canopy/BMC-BookingService/internal/api/handlers"
)

const msgUnauthorized = "требуется авторизация администратора"

// Auth проверяет basic auth администратора
// Сравнение постоянное по времени, чтобы не утекала длина совпадения
func Auth(username, password string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || !credentialsMatch(user, username) || !credentialsMatch(pass, password) {
				w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func credentialsMatch(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
