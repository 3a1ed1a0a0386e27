package app

import (
	"context"

	"rubick-translator/internal/domain"
	"rubick-translator/internal/guard"
	"rubick-translator/internal/ports"
)

type ProviderInfo struct {
	Kind       domain.ProviderKind `json:"kind"`
	Label      string              `json:"label"`
	DeadlineMs int64               `json:"deadline_ms"`
}

func (a *TranslatorAPI) Providers() []ProviderInfo {
	registered := map[domain.ProviderKind]bool{}
	for _, k := range a.d.Providers.Kinds() {
		registered[k] = true
	}
	out := make([]ProviderInfo, 0, len(registered))
	for _, k := range domain.AllProviders() {
		if !registered[k] {
			continue
		}
		out = append(out, ProviderInfo{Kind: k, Label: k.Label(), DeadlineMs: a.d.Providers.Deadline(k).Milliseconds()})
	}
	return out
}

func (a *TranslatorAPI) Languages() []domain.Language { return domain.Languages() }

// ProviderTestResult contains details of a connectivity test.
type ProviderTestResult struct {
	Ok          bool   `json:"ok"`
	Translation string `json:"translation,omitempty"`
	Error       string `json:"error,omitempty"`
}

// TestProvider translates "hello" from English to Chinese with the current
// settings. Nothing is written to history.
func (a *TranslatorAPI) TestProvider(kind domain.ProviderKind) (ProviderTestResult, error) {
	ctx := context.Background()
	settings, err := a.d.Store.GetSettings(ctx)
	if err != nil {
		return ProviderTestResult{}, err
	}
	prov, err := a.d.Providers.Build(kind, settings)
	if err != nil {
		return ProviderTestResult{Error: err.Error()}, nil
	}
	res, err := guard.WithTimeout(ctx, a.d.Providers.Deadline(kind), kind, func(ctx context.Context) (domain.TranslationResult, error) {
		return prov.Translate(ctx, ports.ProviderRequest{Text: "hello", Source: "en", Target: "zh"})
	})
	if err != nil {
		return ProviderTestResult{Error: err.Error()}, nil
	}
	return ProviderTestResult{Ok: true, Translation: res.Translated}, nil
}
