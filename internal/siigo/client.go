package siigo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"siigosync/lib/sl"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultBaseURL = "https://api.siigo.com"

// Client is the default Requester, sending JSON over net/http with a
// preissued access token.
type Client struct {
	hc          *http.Client
	baseURL     string
	accessToken string
	partnerID   string
	log         *slog.Logger
}

type Config struct {
	BaseURL     string
	AccessToken string
	PartnerID   string
	Timeout     time.Duration
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		hc:          &http.Client{Timeout: timeout},
		baseURL:     baseURL,
		accessToken: cfg.AccessToken,
		partnerID:   cfg.PartnerID,
		log:         logger.With(sl.Module("siigo")),
	}
}

// Request sends one call to the Siigo API. On a 2xx status the response is
// returned with an unread body the caller must close; any other status is
// reported as *StatusError.
func (c *Client) Request(ctx context.Context, method, path string, body any) (*http.Response, error) {
	requestID := uuid.NewString()
	endpoint := fmt.Sprintf("%s/%s", c.baseURL, strings.TrimLeft(path, "/"))
	log := c.log.With(
		slog.String("method", method),
		slog.String("endpoint", endpoint),
		slog.String("request_id", requestID),
	)

	status := "ERROR"
	t1 := time.Now()
	defer func() {
		log.Debug("siigo API request completed",
			sl.Duration(t1),
			slog.String("status", status))
	}()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			log.Error("marshal payload", sl.Err(err))
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		log.Error("create request", sl.Err(err))
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}
	if c.partnerID != "" {
		req.Header.Set("Partner-Id", c.partnerID)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		log.Error("request failed", sl.Err(err))
		return nil, err
	}

	status = resp.Status
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		data, _ := io.ReadAll(resp.Body)
		log.Error("siigo API returned error",
			slog.String("status", resp.Status),
			slog.String("body", string(data)))
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       data,
		}
	}

	return resp, nil
}
