package errors

import (
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"siigosync/lib/api/response"
	"siigosync/lib/sl"
)

func NotAllowed(log *slog.Logger) http.HandlerFunc {
	log = log.With(sl.Module("http.handlers.errors"))
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("method not allowed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path))

		render.Status(r, http.StatusMethodNotAllowed)
		render.JSON(w, r, response.Error("Method not allowed"))
	}
}
