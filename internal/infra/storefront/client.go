// Package storefront is the REST client for the storefront API: cart,
// address, auth and catalog endpoints. Calls authorize with the bearer
// credential carried by the request context and are never retried.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/pkg/bearer"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/errs"
)

const maxErrorBody = 4 << 10

// Observer receives the outcome of every storefront call.
type Observer interface {
	ObserveUpstream(operation string, statusCode int, elapsed time.Duration)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	observer   Observer
}

func NewClient(cfg config.StorefrontConfig, observer Observer) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		observer:   observer,
	}
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do sends body as JSON and decodes a 2xx response into out when out is
// non-nil. Any other status becomes an infra.UpstreamError.
func (c *Client) do(ctx context.Context, operation, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errs.Wrapf(err, "encode %s request", operation)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.Wrapf(err, "build %s request", operation)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := bearer.FromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(operation, 0, start)
		return infra.NewUpstreamError(infra.KindUpstreamFailure, operation+" request failed", err)
	}
	defer resp.Body.Close()
	c.observe(operation, resp.StatusCode, start)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(operation, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return infra.NewUpstreamError(infra.KindUpstreamFailure, "decode "+operation+" response", err)
	}
	return nil
}

func (c *Client) observe(operation string, status int, start time.Time) {
	if c.observer != nil {
		c.observer.ObserveUpstream(operation, status, time.Since(start))
	}
}

func statusError(operation string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	msg := fmt.Sprintf("%s returned %d", operation, resp.StatusCode)
	var body errorBody
	if json.Unmarshal(raw, &body) == nil {
		switch {
		case body.Message != "":
			msg = body.Message
		case body.Error != "":
			msg = body.Error
		}
	}

	return infra.NewUpstreamStatusError(kindForStatus(resp.StatusCode), resp.StatusCode, msg)
}

func kindForStatus(status int) infra.ErrorKind {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return infra.KindValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		return infra.KindUnauthorized
	case http.StatusNotFound:
		return infra.KindNotFound
	case http.StatusConflict, http.StatusGone:
		return infra.KindConflict
	default:
		return infra.KindUpstreamFailure
	}
}
