package errors

import (
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"siigosync/lib/api/response"
	"siigosync/lib/sl"
)

func NotFound(log *slog.Logger) http.HandlerFunc {
	log = log.With(sl.Module("http.handlers.errors"))
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("not found", slog.String("path", r.URL.Path))

		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("Requested resource not found"))
	}
}
