package mymemory

import (
	"context"
	"net/url"
	"strings"

	"rubick-translator/internal/adapters/mt/httpclient"
	"rubick-translator/internal/domain"
	"rubick-translator/internal/lang"
	"rubick-translator/internal/ports"
)

const DefaultEndpoint = "https://api.mymemory.translated.net"

type Client struct {
	Endpoint string
	Email    string // sent as "de" to raise the anonymous quota
	http     *httpclient.Client
}

func New(http *httpclient.Client, endpoint, email string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{Endpoint: endpoint, Email: strings.TrimSpace(email), http: http}
}

func (c *Client) Kind() domain.ProviderKind { return domain.ProviderMyMemory }

type response struct {
	ResponseData struct {
		TranslatedText   string `json:"translatedText"`
		DetectedLanguage any    `json:"detectedLanguage"`
	} `json:"responseData"`
}

func (c *Client) Translate(ctx context.Context, req ports.ProviderRequest) (domain.TranslationResult, error) {
	source := req.Source
	if source == "" {
		source = domain.SourceAuto
	}
	q := url.Values{}
	q.Set("q", req.Text)
	q.Set("langpair", source+"|"+req.Target)
	if c.Email != "" {
		q.Set("de", c.Email)
	}
	r, err := c.http.Get(ctx, c.Kind(), strings.TrimRight(c.Endpoint, "/")+"/get", q)
	if err != nil {
		return domain.TranslationResult{}, err
	}
	var resp response
	httpclient.Decode(r.Body, &resp)

	// detectedLanguage is absent, null, or a bare code depending on the match source
	detected, _ := resp.ResponseData.DetectedLanguage.(string)
	return domain.TranslationResult{
		Translated:     resp.ResponseData.TranslatedText,
		DetectedSource: lang.ResolveDetected(source, req.Text, detected),
	}, nil
}
