package google

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"rubick-translator/internal/adapters/mt/httpclient"
	"rubick-translator/internal/domain"
	"rubick-translator/internal/lang"
	"rubick-translator/internal/ports"
)

// DefaultEndpoint is a keyless gtx-compatible proxy.
const DefaultEndpoint = "https://google-translate-proxy.tantu.com"

type Client struct {
	Endpoint string
	http     *httpclient.Client
}

func New(http *httpclient.Client, endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{Endpoint: endpoint, http: http}
}

func (c *Client) Kind() domain.ProviderKind { return domain.ProviderGoogle }

func (c *Client) Translate(ctx context.Context, req ports.ProviderRequest) (domain.TranslationResult, error) {
	source := req.Source
	if source == "" {
		source = domain.SourceAuto
	}
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", source)
	q.Set("tl", req.Target)
	q.Set("dt", "t")
	q.Set("q", req.Text)
	r, err := c.http.Get(ctx, c.Kind(), strings.TrimRight(c.Endpoint, "/")+"/translate_a/single", q)
	if err != nil {
		return domain.TranslationResult{}, err
	}
	translated, detected := parse(r.Body)
	return domain.TranslationResult{
		Translated:     translated,
		DetectedSource: lang.ResolveDetected(source, req.Text, detected),
	}, nil
}

// parse walks [[[translated, original, ...], ...], null, detected, ...].
// Anything that does not fit yields empty strings.
func parse(body []byte) (translated, detected string) {
	var raw []json.RawMessage
	if !httpclient.Decode(body, &raw) || len(raw) == 0 {
		return "", ""
	}
	var sentences []json.RawMessage
	if json.Unmarshal(raw[0], &sentences) == nil {
		var sb strings.Builder
		for _, s := range sentences {
			var parts []json.RawMessage
			if json.Unmarshal(s, &parts) != nil || len(parts) == 0 {
				continue
			}
			var seg string
			if json.Unmarshal(parts[0], &seg) == nil {
				sb.WriteString(seg)
			}
		}
		translated = sb.String()
	}
	if len(raw) > 2 {
		_ = json.Unmarshal(raw[2], &detected)
	}
	return translated, detected
}
