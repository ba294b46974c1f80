package middleware

import (
	"context"
	baseHttp "net/http"
	"strings"

	"github.com/inkwell/api/database/repository"
	"github.com/inkwell/api/pkg/auth"
	"github.com/inkwell/api/pkg/endpoint"
)

type callerContextKey string

const callerKey callerContextKey = "auth.caller"

// AuthMiddleware resolves the request's caller from a signed token. Required
// rejects requests without a valid identity; Optional lets them through
// anonymously so read visibility can still widen for logged-in callers.
type AuthMiddleware struct {
	JWT   auth.JWTHandler
	Users repository.Users
}

func MakeAuthMiddleware(jwt auth.JWTHandler, users repository.Users) AuthMiddleware {
	return AuthMiddleware{
		JWT:   jwt,
		Users: users,
	}
}

func (m AuthMiddleware) Required(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
		caller := m.resolveCaller(r)

		if caller.IsAnonymous() {
			return endpoint.UnauthorizedError("Authentication required")
		}

		return next(w, WithCaller(r, caller))
	}
}

func (m AuthMiddleware) Optional(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
		if caller := m.resolveCaller(r); !caller.IsAnonymous() {
			r = WithCaller(r, caller)
		}

		return next(w, r)
	}
}

// resolveCaller returns nil for anything short of a valid token bound to a
// live user row. The role is read from the row, not the token, so demotions
// take effect before the token expires.
func (m AuthMiddleware) resolveCaller(r *baseHttp.Request) *auth.Caller {
	token := extractToken(r)

	if token == "" {
		return nil
	}

	claims, err := m.JWT.Validate(token)
	if err != nil {
		return nil
	}

	user := m.Users.FindByUUID(claims.ID)
	if user == nil {
		return nil
	}

	return &auth.Caller{
		ID:    user.ID,
		UUID:  user.UUID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
}

func extractToken(r *baseHttp.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))

	if strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return strings.TrimSpace(header[len("bearer "):])
	}

	if cookie, err := r.Cookie(auth.CookieName); err == nil {
		return strings.TrimSpace(cookie.Value)
	}

	return ""
}

// WithCaller attaches the resolved caller to the request context.
func WithCaller(r *baseHttp.Request, caller *auth.Caller) *baseHttp.Request {
	return r.WithContext(
		context.WithValue(r.Context(), callerKey, caller),
	)
}

// GetCaller extracts the resolved caller from the request context. A nil
// result means the request is anonymous.
func GetCaller(r *baseHttp.Request) *auth.Caller {
	caller, ok := r.Context().Value(callerKey).(*auth.Caller)
	if !ok {
		return nil
	}

	return caller
}
