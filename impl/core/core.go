package core

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"siigosync/entity"
	"siigosync/lib/sl"
)

type AuthService interface {
	UserByToken(token string) (*entity.User, error)
}

type InvoiceService interface {
	List(ctx context.Context, query map[string]any) (*http.Response, error)
	Get(ctx context.Context, id string) (*http.Response, error)
	Create(ctx context.Context, inv *entity.Invoice) (*http.Response, error)
	Update(ctx context.Context, id string, inv *entity.Invoice) (*http.Response, error)
	Delete(ctx context.Context, id string) (*http.Response, error)
}

type Core struct {
	inv  InvoiceService
	auth AuthService
	log  *slog.Logger
}

func New(inv InvoiceService, log *slog.Logger) *Core {
	if inv == nil {
		panic("invoice service is nil")
	}
	return &Core{
		inv: inv,
		log: log.With(sl.Module("core")),
	}
}

func (c *Core) SetAuthService(auth AuthService) {
	c.auth = auth
}

func (c *Core) AuthenticateByToken(token string) (*entity.User, error) {
	if c.auth == nil {
		return nil, fmt.Errorf("auth service not connected")
	}
	return c.auth.UserByToken(token)
}

func (c *Core) ListInvoices(ctx context.Context, query map[string]any) (*http.Response, error) {
	return c.inv.List(ctx, query)
}

func (c *Core) GetInvoice(ctx context.Context, id string) (*http.Response, error) {
	return c.inv.Get(ctx, id)
}

func (c *Core) CreateInvoice(ctx context.Context, inv *entity.Invoice) (*http.Response, error) {
	c.log.Debug("create invoice",
		slog.Int("document_id", documentID(inv)),
		slog.Int("items", itemCount(inv)))
	return c.inv.Create(ctx, inv)
}

func (c *Core) UpdateInvoice(ctx context.Context, id string, inv *entity.Invoice) (*http.Response, error) {
	c.log.Debug("update invoice",
		slog.String("invoice_id", id),
		slog.Int("items", itemCount(inv)))
	return c.inv.Update(ctx, id, inv)
}

func (c *Core) DeleteInvoice(ctx context.Context, id string) (*http.Response, error) {
	return c.inv.Delete(ctx, id)
}

func documentID(inv *entity.Invoice) int {
	if inv == nil || inv.Document == nil {
		return 0
	}
	return inv.Document.ID
}

func itemCount(inv *entity.Invoice) int {
	if inv == nil {
		return 0
	}
	return len(inv.Items)
}
