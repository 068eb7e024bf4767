package http

import (
	"context"

	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftline/timeclock-backend-go/internal/domain/auth"
	"github.com/shiftline/timeclock-backend-go/internal/domain/worker"
)

// PrincipalFromContext builds the acting principal from the verified
// token claims. The principal is passed explicitly into the services;
// nothing below the handlers reads the request context for identity.
func PrincipalFromContext(ctx context.Context) (worker.Principal, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return worker.Principal{}, auth.ErrInvalidToken
	}

	workerID, ok := claims["worker_id"].(string)
	if !ok || workerID == "" {
		return worker.Principal{}, auth.ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return worker.Principal{}, auth.ErrInvalidToken
	}

	return worker.Principal{WorkerID: workerID, Role: worker.Role(roleStr)}, nil
}
