package handler

import (
	"encoding/json"
	"log/slog"
	"time"

	baseHttp "net/http"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/database/repository"
	"github.com/inkwell/api/handler/payload"
	"github.com/inkwell/api/pkg/auth"
	"github.com/inkwell/api/pkg/endpoint"
	"github.com/inkwell/api/pkg/middleware"
	"github.com/inkwell/api/pkg/portal"
)

// invalidCredentials is shared by the unknown-email and wrong-password
// branches so the response never reveals which one failed.
const invalidCredentials = "Invalid credentials"

type AuthHandler struct {
	Users        repository.Users
	Sessions     repository.Sessions
	JWT          auth.JWTHandler
	SecureCookie bool
}

func MakeAuthHandler(users repository.Users, sessions repository.Sessions, jwt auth.JWTHandler, secureCookie bool) AuthHandler {
	return AuthHandler{
		Users:        users,
		Sessions:     sessions,
		JWT:          jwt,
		SecureCookie: secureCookie,
	}
}

func (h *AuthHandler) Login(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	req, err := endpoint.ParseRequestBody[payload.LoginRequest](r)
	if err != nil {
		return endpoint.BadRequestError("Invalid request body")
	}

	validator := portal.GetDefaultValidator()
	if rejects, _ := validator.Rejects(req); rejects {
		return &endpoint.ApiError{
			Message: "Email and password are required",
			Status:  baseHttp.StatusBadRequest,
			Data:    map[string]any{"errors": validator.GetErrors()},
		}
	}

	user := h.Users.FindByEmail(req.Email)
	if user == nil {
		return endpoint.UnauthorizedError(invalidCredentials)
	}

	if !auth.PasswordFromHash(user.PasswordHash).Is(req.Password) {
		if err := h.Users.RegisterFailedLogin(user); err != nil {
			slog.Error("failed to register failed login", "err", err)
		}

		return endpoint.UnauthorizedError(invalidCredentials)
	}

	if err := h.Users.RegisterLogin(user); err != nil {
		return endpoint.LogInternalError("could not register login", err)
	}

	expiresAt := time.Now().UTC().Add(auth.SessionTTL)

	if _, err := h.Sessions.Create(database.SessionsAttrs{UserID: user.ID, ExpiresAt: expiresAt}); err != nil {
		return endpoint.LogInternalError("could not create session", err)
	}

	token, err := h.JWT.Generate(user.UUID, user.Email, user.Name, user.Role)
	if err != nil {
		return endpoint.LogInternalError("could not generate token", err)
	}

	baseHttp.SetCookie(w, &baseHttp.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.SecureCookie,
		SameSite: baseHttp.SameSiteLaxMode,
	})

	resp := payload.LoginResponse{
		Token: token,
		User:  payload.GetUserResponse(user),
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}

// Me returns the authenticated caller's profile with content stats. The
// router guarantees a caller; a missing row means the account was removed
// after the token was issued.
func (h *AuthHandler) Me(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	caller := middleware.GetCaller(r)

	if caller.IsAnonymous() {
		return endpoint.UnauthorizedError("Authentication required")
	}

	user := h.Users.FindByUUID(caller.UUID)
	if user == nil {
		return endpoint.NotFound("User not found")
	}

	resp := payload.GetProfileResponse(user, payload.UserStatsResponse{
		Posts:    h.Users.CountPosts(user.ID),
		Comments: h.Users.CountComments(user.ID),
	})

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}
