package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// ensureViewerSession gives every session a viewer id on its first request
// and exposes it through the request context.
func (app *Application) ensureViewerSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewerId := app.sessionManager.GetString(r.Context(), SessionKeyViewer.String())

		if viewerId == "" {
			viewerId = uuid.NewString()
			app.sessionManager.Put(r.Context(), SessionKeyViewer.String(), viewerId)
		}

		ctx := context.WithValue(r.Context(), SessionKeyViewer, viewerId)
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}

func (app *Application) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !app.sessionIsAdmin(r) {
			app.unauthorizedAccessResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}
