package libretranslate

import (
	"context"
	"strings"

	"rubick-translator/internal/adapters/mt/httpclient"
	"rubick-translator/internal/domain"
	"rubick-translator/internal/lang"
	"rubick-translator/internal/ports"
)

type Client struct {
	BaseURL string
	http    *httpclient.Client
}

// New binds the adapter to baseURL; an empty value falls back to fallbackURL.
func New(http *httpclient.Client, baseURL, fallbackURL string) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = fallbackURL
	}
	if base == "" {
		base = domain.DefaultLibreTranslateBaseURL
	}
	return &Client{BaseURL: base, http: http}
}

func (c *Client) Kind() domain.ProviderKind { return domain.ProviderLibreTranslate }

type request struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type response struct {
	TranslatedText   string `json:"translatedText"`
	TranslatedTextV2 string `json:"translated_text"`
	DetectedLanguage *struct {
		Language string `json:"language"`
	} `json:"detectedLanguage"`
	DetectedSourceLanguage string `json:"detected_source_language"`
}

func (c *Client) Translate(ctx context.Context, req ports.ProviderRequest) (domain.TranslationResult, error) {
	source := req.Source
	if source == "" {
		source = domain.SourceAuto
	}
	url := strings.TrimRight(c.BaseURL, "/") + "/translate"
	r, err := c.http.PostJSON(ctx, c.Kind(), url, request{Q: req.Text, Source: source, Target: req.Target, Format: "text"})
	if err != nil {
		return domain.TranslationResult{}, err
	}
	var resp response
	httpclient.Decode(r.Body, &resp)

	translated := resp.TranslatedText
	if translated == "" {
		translated = resp.TranslatedTextV2
	}
	detected := ""
	if resp.DetectedLanguage != nil {
		detected = resp.DetectedLanguage.Language
	}
	return domain.TranslationResult{
		Translated:     translated,
		DetectedSource: lang.ResolveDetected(source, req.Text, detected, resp.DetectedSourceLanguage),
	}, nil
}
