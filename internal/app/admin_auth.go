package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/novaflix/api"
	"github.com/metinatakli/novaflix/internal/domain"
)

func (app *Application) AdminLogin(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.AdminLoginRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		logger.Warn("admin login validation failed")
		app.invalidCredentialsResponse(w, r)
		return
	}

	err = app.gate.Authenticate(input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			logger.Warn("admin login failed due to incorrect credentials")
			app.invalidCredentialsResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if app.sessionIsAdmin(r) {
		resp := api.MessageResponse{
			Message: "You are already logged in",
		}

		err := app.writeJSON(w, http.StatusOK, resp, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	// new token on privilege change; the viewer id carries the cart across
	err = app.sessionManager.RenewToken(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.sessionManager.Put(r.Context(), SessionKeyAdmin.String(), true)

	logger.Info("admin logged in")

	w.WriteHeader(http.StatusNoContent)
}

// AdminLogout drops the admin flag but keeps the rest of the session, so the
// viewer's list and genre selection survive.
func (app *Application) AdminLogout(w http.ResponseWriter, r *http.Request) {
	if !app.sessionIsAdmin(r) {
		app.notFoundResponse(w, r)
		return
	}

	err := app.sessionManager.RenewToken(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.sessionManager.Remove(r.Context(), SessionKeyAdmin.String())

	w.WriteHeader(http.StatusNoContent)
}
