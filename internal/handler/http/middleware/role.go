package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftline/timeclock-backend-go/internal/domain/worker"
	"github.com/shiftline/timeclock-backend-go/internal/handler/http/response"
)

// RequireCapability rejects requests whose token role lacks the
// capability. Services re-check against the principal, so this is an
// early gate, not the enforcement point.
func RequireCapability(capability worker.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", capability))
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", capability))
				return
			}

			role := worker.Role(roleStr)
			if !worker.Allowed(role, capability) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but role is '%s'", capability, role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly requires the admin role
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, worker.ErrCapabilityRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(worker.RoleAdmin) {
			response.HandleError(w, worker.ErrCapabilityRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
