package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/novaflix/internal/jsonutil"
	"go.opentelemetry.io/otel/trace"
)

func (app *Application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	return jsonutil.WriteJSON(w, status, data, headers)
}

func (app *Application) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	return jsonutil.ReadJSON(w, r, dst)
}

// contextGetLogger returns the application logger annotated with the request
// id, the request line and, when a span is active, its trace id.
func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	logger := app.logger.With(
		"request_id", middleware.GetReqID(r.Context()),
		"method", r.Method,
		"uri", r.URL.RequestURI(),
	)

	spanCtx := trace.SpanContextFromContext(r.Context())
	if spanCtx.IsValid() {
		logger = logger.With("trace_id", spanCtx.TraceID().String())
	}

	return logger
}
