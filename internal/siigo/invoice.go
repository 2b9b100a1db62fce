package siigo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"siigosync/entity"
)

// Invoices maps sales invoice operations onto Siigo API calls.
type Invoices struct {
	client Requester
}

func NewInvoices(client Requester) *Invoices {
	return &Invoices{client: client}
}

func invoicesPath() string {
	return fmt.Sprintf("%s/invoices", APIVersion)
}

func invoicePath(id string) string {
	return fmt.Sprintf("%s/invoices/%s", APIVersion, url.PathEscape(id))
}

// ListPath returns the path List requests for the given filters.
func ListPath(query map[string]any) string {
	return withQuery(invoicesPath(), query)
}

// List returns invoices matching the query filters, e.g. {"name": "FV-1", "created_start": "2024-01-01"}.
func (s *Invoices) List(ctx context.Context, query map[string]any) (*http.Response, error) {
	return s.client.Request(ctx, http.MethodGet, ListPath(query), nil)
}

func (s *Invoices) Get(ctx context.Context, id string) (*http.Response, error) {
	return s.client.Request(ctx, http.MethodGet, invoicePath(id), nil)
}

func (s *Invoices) Create(ctx context.Context, inv *entity.Invoice) (*http.Response, error) {
	payload, err := MapInvoice(inv)
	if err != nil {
		return nil, err
	}
	return s.client.Request(ctx, http.MethodPost, invoicesPath(), payload)
}

func (s *Invoices) Update(ctx context.Context, id string, inv *entity.Invoice) (*http.Response, error) {
	payload, err := MapInvoice(inv)
	if err != nil {
		return nil, err
	}
	return s.client.Request(ctx, http.MethodPut, invoicePath(id), payload)
}

func (s *Invoices) Delete(ctx context.Context, id string) (*http.Response, error) {
	return s.client.Request(ctx, http.MethodDelete, invoicePath(id), nil)
}
