package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/metinatakli/novaflix/api"
	"github.com/metinatakli/novaflix/internal/domain"
)

const (
	cartEventName     = "cart"
	cartHeartbeatTick = 25 * time.Second
)

func (app *Application) GetCart(w http.ResponseWriter, r *http.Request) {
	app.writeCart(w, r)
}

// AddToCart puts a catalog movie into the list of the session. Adding a movie
// that is already there leaves the list unchanged.
func (app *Application) AddToCart(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.AddToCartRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie, err := app.catalog.Find(input.MovieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("attempt to add unknown movie to list", "movie_id", input.MovieId)
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	added, err := app.cart.Add(r.Context(), app.contextGetViewerId(r), movie)
	if err != nil {
		logger.Error("failed to add movie to list", "error", err, "movie_id", movie.ID)
		app.serverErrorResponse(w, r, err)
		return
	}

	if !added {
		logger.Debug("movie already in list", "movie_id", movie.ID)
	}

	app.writeCart(w, r)
}

// RemoveFromCart takes a movie out of the list. Removing a movie that is not
// in the list is not an error.
func (app *Application) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	movieId := chi.URLParam(r, "movieId")

	_, err := app.cart.Remove(r.Context(), app.contextGetViewerId(r), movieId)
	if err != nil {
		app.contextGetLogger(r).Error("failed to remove movie from list", "error", err, "movie_id", movieId)
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// StreamCartEvents streams the changes of the list of the session as
// server-sent events. The first event carries the current count.
func (app *Application) StreamCartEvents(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	viewerId, err := app.loadViewerId(r)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if viewerId == "" {
		app.notFoundResponse(w, r)
		return
	}

	// subscribe before counting so no mutation falls between the two
	events, cancel := app.cart.Subscribe(viewerId)
	defer cancel()

	count, err := app.cart.Count(r.Context(), viewerId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	rc := http.NewResponseController(w)

	// the server write timeout would cut the stream
	err = rc.SetWriteDeadline(time.Time{})
	if err != nil && !errors.Is(err, http.ErrNotSupported) {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	err = writeCartEvent(w, rc, api.CartEvent{Type: "snapshot", Count: count})
	if err != nil {
		logger.Debug("cart event stream closed", "error", err)
		return
	}

	heartbeat := time.NewTicker(cartHeartbeatTick)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return

		case event, ok := <-events:
			if !ok {
				return
			}

			err = writeCartEvent(w, rc, api.CartEvent{
				Type:    string(event.Type),
				MovieId: event.MovieID,
				Count:   event.Count,
			})
			if err != nil {
				logger.Debug("cart event stream closed", "error", err)
				return
			}

		case <-heartbeat.C:
			_, err = fmt.Fprint(w, ": ping\n\n")
			if err == nil {
				err = rc.Flush()
			}
			if err != nil {
				logger.Debug("cart event stream closed", "error", err)
				return
			}
		}
	}
}

// loadViewerId reads the viewer id from the session cookie without going
// through LoadAndSave, which would buffer the stream.
func (app *Application) loadViewerId(r *http.Request) (string, error) {
	cookie, err := r.Cookie(app.sessionManager.Cookie.Name)
	if err != nil {
		return "", nil
	}

	ctx, err := app.sessionManager.Load(r.Context(), cookie.Value)
	if err != nil {
		return "", err
	}

	return app.sessionManager.GetString(ctx, SessionKeyViewer.String()), nil
}

func writeCartEvent(w http.ResponseWriter, rc *http.ResponseController, event api.CartEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", cartEventName, data)
	if err != nil {
		return err
	}

	return rc.Flush()
}

func (app *Application) writeCart(w http.ResponseWriter, r *http.Request) {
	movies, err := app.cart.List(r.Context(), app.contextGetViewerId(r))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	items := make([]api.CartItem, len(movies))
	for i, movie := range movies {
		items[i] = api.CartItem{
			Movie:   toApiMovie(movie),
			Trailer: toApiTrailer(movie),
		}
	}

	resp := api.CartResponse{
		Movies: items,
		Count:  len(items),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
