package siigo_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siigosync/internal/siigo"
)

type call struct {
	method string
	path   string
	body   any
}

type fakeRequester struct {
	calls []call
	err   error
}

func (f *fakeRequester) Request(_ context.Context, method, path string, body any) (*http.Response, error) {
	f.calls = append(f.calls, call{method: method, path: path, body: body})
	if f.err != nil {
		return nil, f.err
	}
	return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader("{}"))}, nil
}

func TestInvoicesList(t *testing.T) {
	fake := &fakeRequester{}
	inv := siigo.NewInvoices(fake)

	_, err := inv.List(context.Background(), nil)
	require.NoError(t, err)
	_, err = inv.List(context.Background(), map[string]any{"name": "a b"})
	require.NoError(t, err)

	require.Len(t, fake.calls, 2)
	assert.Equal(t, call{method: http.MethodGet, path: "v1/invoices"}, fake.calls[0])
	assert.Equal(t, http.MethodGet, fake.calls[1].method)
	assert.Contains(t, fake.calls[1].path, "name=a+b")
	assert.Nil(t, fake.calls[1].body)
}

func TestInvoicesCreateAndUpdate(t *testing.T) {
	fake := &fakeRequester{}
	inv := siigo.NewInvoices(fake)

	_, err := inv.Create(context.Background(), sampleInvoice())
	require.NoError(t, err)
	_, err = inv.Update(context.Background(), "123", sampleInvoice())
	require.NoError(t, err)

	require.Len(t, fake.calls, 2)
	assert.Equal(t, http.MethodPost, fake.calls[0].method)
	assert.Equal(t, "v1/invoices", fake.calls[0].path)
	assert.Equal(t, http.MethodPut, fake.calls[1].method)
	assert.Equal(t, "v1/invoices/123", fake.calls[1].path)

	want, err := siigo.MapInvoice(sampleInvoice())
	require.NoError(t, err)
	assert.Equal(t, want, fake.calls[0].body)
	assert.Equal(t, want, fake.calls[1].body)
}

func TestInvoicesGetAndDelete(t *testing.T) {
	fake := &fakeRequester{}
	inv := siigo.NewInvoices(fake)

	_, err := inv.Get(context.Background(), "a7b1d5f2-0f5e")
	require.NoError(t, err)
	_, err = inv.Delete(context.Background(), "x/y")
	require.NoError(t, err)

	assert.Equal(t, call{method: http.MethodGet, path: "v1/invoices/a7b1d5f2-0f5e"}, fake.calls[0])
	assert.Equal(t, call{method: http.MethodDelete, path: "v1/invoices/x%2Fy"}, fake.calls[1])
}

func TestInvoicesMissingFieldSkipsRequest(t *testing.T) {
	fake := &fakeRequester{}
	inv := siigo.NewInvoices(fake)

	broken := sampleInvoice()
	broken.Customer = nil

	_, err := inv.Create(context.Background(), broken)
	require.ErrorIs(t, err, siigo.ErrMissingField)
	_, err = inv.Update(context.Background(), "1", broken)
	require.ErrorIs(t, err, siigo.ErrMissingField)
	assert.Empty(t, fake.calls)
}

func TestInvoicesPassTransportErrorThrough(t *testing.T) {
	transportErr := errors.New("dial tcp: connection refused")
	inv := siigo.NewInvoices(&fakeRequester{err: transportErr})

	_, err := inv.Create(context.Background(), sampleInvoice())
	assert.Same(t, transportErr, err)
	_, err = inv.List(context.Background(), nil)
	assert.Same(t, transportErr, err)
}
