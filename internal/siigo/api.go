package siigo

import (
	"context"
	"net/http"
)

// APIVersion prefixes every resource path.
const APIVersion = "v1"

// Requester performs a single call against the Siigo API. Paths are relative
// to the API root, e.g. "v1/invoices". Any failure is returned to the caller as is.
type Requester interface {
	Request(ctx context.Context, method, path string, body any) (*http.Response, error)
}
