// Package httpclient is the resty-backed transport shared by the HTTP
// translation adapters.
package httpclient

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"rubick-translator/internal/domain"

	"github.com/go-resty/resty/v2"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 rubick-translator"

// Response is the raw upstream answer. Status is informational only: adapters
// normalize unexpected bodies instead of failing on them.
type Response struct {
	Status int
	Body   []byte
}

type Client struct {
	http *resty.Client
}

// New returns a client whose own timeout is a backstop; callers bound each
// call through their context.
func New(timeout time.Duration) *Client {
	c := resty.New().SetTimeout(timeout).SetHeader("User-Agent", userAgent)
	return &Client{http: c}
}

// NewWithResty wraps an existing resty client, e.g. one pointed at a test server.
func NewWithResty(c *resty.Client) *Client { return &Client{http: c} }

func (c *Client) Get(ctx context.Context, kind domain.ProviderKind, endpoint string, query url.Values) (Response, error) {
	r, err := c.http.R().SetContext(ctx).SetQueryParamsFromValues(query).Get(endpoint)
	if err != nil {
		return Response{}, networkError(ctx, kind, err)
	}
	return Response{Status: r.StatusCode(), Body: r.Body()}, nil
}

func (c *Client) PostJSON(ctx context.Context, kind domain.ProviderKind, endpoint string, body any) (Response, error) {
	r, err := c.http.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(endpoint)
	if err != nil {
		return Response{}, networkError(ctx, kind, err)
	}
	return Response{Status: r.StatusCode(), Body: r.Body()}, nil
}

// Decode unmarshals body into v and reports whether it succeeded.
func Decode(body []byte, v any) bool {
	if len(body) == 0 {
		return false
	}
	return json.Unmarshal(body, v) == nil
}

func networkError(ctx context.Context, kind domain.ProviderKind, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return &domain.NetworkError{Provider: kind, Err: ctxErr}
	}
	return &domain.NetworkError{Provider: kind, Err: err}
}
