package api

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"siigosync/internal/config"
	"siigosync/internal/http-server/handlers/errors"
	"siigosync/internal/http-server/handlers/invoice"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"siigosync/internal/http-server/middleware/authenticate"
	"siigosync/internal/http-server/middleware/timeout"
	"siigosync/lib/sl"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	authenticate.Authenticate
	invoice.Core
}

// NewRouter mounts the invoice API; request contexts are bounded by requestTimeout
func NewRouter(log *slog.Logger, handler Handler, requestTimeout time.Duration) http.Handler {
	router := chi.NewRouter()
	router.Use(timeout.Timeout(requestTimeout))
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(render.SetContentType(render.ContentTypeJSON))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.Route("/v1", func(rootApi chi.Router) {
		rootApi.Use(authenticate.New(log, handler))
		rootApi.Route("/invoices", func(inv chi.Router) {
			inv.Get("/", invoice.List(log, handler))
			inv.Post("/", invoice.Create(log, handler))
			inv.Get("/{id}", invoice.Get(log, handler))
			inv.Put("/{id}", invoice.Update(log, handler))
			inv.Delete("/{id}", invoice.Delete(log, handler))
		})
	})

	return router
}

func New(conf *config.Config, log *slog.Logger, handler Handler) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	// leave room for the upstream call inside the write timeout
	requestTimeout := conf.Siigo.Timeout + 5*time.Second

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:      NewRouter(log, handler, requestTimeout),
		ErrorLog:     httpLog,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: requestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIp, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
