package translator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rubick-translator/internal/domain"
	"rubick-translator/internal/guard"
	"rubick-translator/internal/lang"
	"rubick-translator/internal/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Providers resolves a ProviderKind to a bound adapter and its deadline.
type Providers interface {
	Build(kind domain.ProviderKind, s domain.Settings) (ports.Provider, error)
	Deadline(kind domain.ProviderKind) time.Duration
}

// Store is the part of the settings/history store the dispatcher needs.
type Store interface {
	GetSettings(ctx context.Context) (domain.Settings, error)
	AddHistory(ctx context.Context, entry domain.HistoryEntry) error
}

type Deps struct {
	Providers Providers
	Store     Store
	Log       *zap.SugaredLogger
}

type Service struct{ d Deps }

func New(d Deps) *Service {
	if d.Log == nil {
		d.Log = zap.NewNop().Sugar()
	}
	return &Service{d: d}
}

// Translate resolves defaults, runs one provider call under its deadline and
// records the outcome in history. Provider errors are returned as is and leave
// history untouched; nothing is retried.
func (s *Service) Translate(ctx context.Context, req domain.TranslationRequest) (domain.TranslationResult, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		src := req.Source
		if src == "" {
			src = domain.SourceAuto
		}
		return domain.TranslationResult{Translated: "", DetectedSource: src}, nil
	}

	settings, err := s.d.Store.GetSettings(ctx)
	if err != nil {
		return domain.TranslationResult{}, err
	}

	kind := req.Provider
	if kind == "" {
		kind = settings.LastProvider
	}
	if kind == "" {
		kind = domain.ProviderLibreTranslate
	}
	source := req.Source
	if source == "" {
		source = domain.SourceAuto
	}
	target := req.Target
	if target == "" {
		target = lang.DefaultTarget(text)
	}

	log := s.d.Log.With("request_id", uuid.NewString(), "provider", kind)

	adapter, err := s.d.Providers.Build(kind, settings)
	if err != nil {
		log.Warnw("provider unavailable", "error", err)
		return domain.TranslationResult{}, err
	}

	deadline := s.d.Providers.Deadline(kind)
	started := time.Now()
	res, err := guard.WithTimeout(ctx, deadline, kind, func(ctx context.Context) (domain.TranslationResult, error) {
		return adapter.Translate(ctx, ports.ProviderRequest{Text: text, Source: source, Target: target})
	})
	if err != nil {
		log.Infow("translate failed", "source", source, "target", target, "elapsed", time.Since(started), "error", err)
		return domain.TranslationResult{}, err
	}
	if res.DetectedSource == "" {
		res.DetectedSource = lang.ResolveDetected(source, text)
	}
	log.Debugw("translated", "source", source, "target", target, "detected", res.DetectedSource, "elapsed", time.Since(started))

	if err := s.d.Store.AddHistory(ctx, domain.HistoryEntry{
		Text:           text,
		Translated:     res.Translated,
		Provider:       kind,
		Source:         source,
		Target:         target,
		DetectedSource: res.DetectedSource,
	}); err != nil {
		log.Errorw("history write failed", "error", err)
		return res, fmt.Errorf("record history: %w", err)
	}
	return res, nil
}
