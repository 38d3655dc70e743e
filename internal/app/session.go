package app

import (
	"net/http"

	"github.com/metinatakli/novaflix/internal/catalog"
)

type sessionKey string

const (
	// SessionKeyViewer holds the stable id the personal list is stored under.
	// It survives token renewal, unlike the session token itself.
	SessionKeyViewer = sessionKey("viewerID")
	SessionKeyGenre  = sessionKey("browse.genre")
	SessionKeyAdmin  = sessionKey("admin")
)

func (s sessionKey) String() string {
	return string(s)
}

func (app *Application) contextGetViewerId(r *http.Request) string {
	viewerId, ok := r.Context().Value(SessionKeyViewer).(string)
	if !ok {
		panic("missing viewer id from context")
	}

	return viewerId
}

func (app *Application) sessionGetSelection(r *http.Request) catalog.Selection {
	return catalog.Selection{
		Genre: app.sessionManager.GetString(r.Context(), SessionKeyGenre.String()),
	}
}

func (app *Application) sessionPutSelection(r *http.Request, sel catalog.Selection) {
	if !sel.Active() {
		app.sessionManager.Remove(r.Context(), SessionKeyGenre.String())
		return
	}

	app.sessionManager.Put(r.Context(), SessionKeyGenre.String(), sel.Genre)
}

func (app *Application) sessionIsAdmin(r *http.Request) bool {
	return app.sessionManager.GetBool(r.Context(), SessionKeyAdmin.String())
}
