package invoice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"siigosync/entity"
	"siigosync/internal/siigo"
	"siigosync/lib/api/cont"
	"siigosync/lib/api/response"
	"siigosync/lib/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Core interface {
	ListInvoices(ctx context.Context, query map[string]any) (*http.Response, error)
	GetInvoice(ctx context.Context, id string) (*http.Response, error)
	CreateInvoice(ctx context.Context, inv *entity.Invoice) (*http.Response, error)
	UpdateInvoice(ctx context.Context, id string, inv *entity.Invoice) (*http.Response, error)
	DeleteInvoice(ctx context.Context, id string) (*http.Response, error)
}

func requestLogger(logger *slog.Logger, r *http.Request) *slog.Logger {
	return logger.With(
		sl.Module("http.handlers.invoice"),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("user", cont.Username(r.Context())),
	)
}

func List(logger *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := requestLogger(logger, r)

		if handler == nil {
			log.Error("invoice service not available")
			render.JSON(w, r, response.Error("Invoice service not available"))
			return
		}

		query := make(map[string]any)
		for key, values := range r.URL.Query() {
			if len(values) > 0 {
				query[key] = values[0]
			}
		}

		resp, err := handler.ListInvoices(r.Context(), query)
		if err != nil {
			failed(w, r, log.With(slog.Any("query", query)), err)
			return
		}
		relay(w, resp, log)
	}
}

func Get(logger *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		invoiceId := chi.URLParam(r, "id")
		log := requestLogger(logger, r).With(slog.String("invoice_id", invoiceId))

		if handler == nil {
			log.Error("invoice service not available")
			render.JSON(w, r, response.Error("Invoice service not available"))
			return
		}

		resp, err := handler.GetInvoice(r.Context(), invoiceId)
		if err != nil {
			failed(w, r, log, err)
			return
		}
		relay(w, resp, log)
	}
}

func Create(logger *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := requestLogger(logger, r)

		if handler == nil {
			log.Error("invoice service not available")
			render.JSON(w, r, response.Error("Invoice service not available"))
			return
		}

		var inv entity.Invoice
		if err := render.Bind(r, &inv); err != nil {
			log.Warn("invalid invoice", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(fmt.Sprintf("Invalid invoice: %v", err)))
			return
		}

		resp, err := handler.CreateInvoice(r.Context(), &inv)
		if err != nil {
			failed(w, r, log, err)
			return
		}
		log.Info("invoice created", slog.Int("status", resp.StatusCode))
		relay(w, resp, log)
	}
}

func Update(logger *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		invoiceId := chi.URLParam(r, "id")
		log := requestLogger(logger, r).With(slog.String("invoice_id", invoiceId))

		if handler == nil {
			log.Error("invoice service not available")
			render.JSON(w, r, response.Error("Invoice service not available"))
			return
		}

		var inv entity.Invoice
		if err := render.Bind(r, &inv); err != nil {
			log.Warn("invalid invoice", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(fmt.Sprintf("Invalid invoice: %v", err)))
			return
		}

		resp, err := handler.UpdateInvoice(r.Context(), invoiceId, &inv)
		if err != nil {
			failed(w, r, log, err)
			return
		}
		log.Info("invoice updated", slog.Int("status", resp.StatusCode))
		relay(w, resp, log)
	}
}

func Delete(logger *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		invoiceId := chi.URLParam(r, "id")
		log := requestLogger(logger, r).With(slog.String("invoice_id", invoiceId))

		if handler == nil {
			log.Error("invoice service not available")
			render.JSON(w, r, response.Error("Invoice service not available"))
			return
		}

		resp, err := handler.DeleteInvoice(r.Context(), invoiceId)
		if err != nil {
			failed(w, r, log, err)
			return
		}
		log.Info("invoice deleted", slog.Int("status", resp.StatusCode))
		relay(w, resp, log)
	}
}

// relay copies the upstream status and body to the client unchanged
func relay(w http.ResponseWriter, resp *http.Response, log *slog.Logger) {
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Error("failed to copy response", sl.Err(err))
	}
}

func failed(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var statusErr *siigo.StatusError
	switch {
	case errors.Is(err, siigo.ErrMissingField):
		log.Warn("incomplete invoice", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(fmt.Sprintf("Invalid invoice: %v", err)))
	case errors.As(err, &statusErr):
		log.Warn("siigo rejected request", slog.String("status", statusErr.Status))
		var details interface{} = string(statusErr.Body)
		if json.Valid(statusErr.Body) {
			details = json.RawMessage(statusErr.Body)
		}
		render.Status(r, statusErr.StatusCode)
		render.JSON(w, r, response.Fail(fmt.Sprintf("Siigo: %s", statusErr.Status), details))
	default:
		log.Error("siigo request", sl.Err(err))
		render.Status(r, http.StatusBadGateway)
		render.JSON(w, r, response.Error(fmt.Sprintf("Request failed: %v", err)))
	}
}
