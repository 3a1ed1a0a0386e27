package app

import (
	"context"
	"sync"

	"rubick-translator/internal/adapters/mt/registry"
	"rubick-translator/internal/domain"
	"rubick-translator/internal/ports"
	"rubick-translator/internal/usecase/exporter"
	"rubick-translator/internal/usecase/importer"
	"rubick-translator/internal/usecase/store"
	"rubick-translator/internal/usecase/translator"

	"go.uber.org/zap"
)

type Deps struct {
	Translator *translator.Service
	Store      *store.Service
	Exporter   *exporter.Service
	Importer   *importer.Service
	Providers  *registry.Registry
	Host       ports.HostBridge
	Log        *zap.SugaredLogger
}

// TranslatorAPI is everything the UI may call.
type TranslatorAPI struct {
	d         Deps
	readyOnce sync.Once
	ready     chan struct{}
}

func NewTranslatorAPI(d Deps) *TranslatorAPI {
	if d.Log == nil {
		d.Log = zap.NewNop().Sugar()
	}
	return &TranslatorAPI{d: d, ready: make(chan struct{})}
}

// SetHost attaches the host bridge once the host runtime is up.
func (a *TranslatorAPI) SetHost(h ports.HostBridge) { a.d.Host = h }

// MarkReady prepares the stored documents and releases Ready waiters. A
// failure to create defaults is logged and does not block readiness; reads
// fall back to defaults anyway.
func (a *TranslatorAPI) MarkReady(ctx context.Context) {
	a.readyOnce.Do(func() {
		if err := a.d.Store.EnsureDefaults(ctx); err != nil {
			a.d.Log.Warnw("ensure defaults failed", "error", err)
		}
		close(a.ready)
	})
}

// Ready blocks until MarkReady has run or ctx ends, and reports which.
func (a *TranslatorAPI) Ready(ctx context.Context) bool {
	select {
	case <-a.ready:
		return true
	case <-ctx.Done():
		return false
	}
}

type InitState struct {
	Settings domain.Settings       `json:"settings"`
	History  []domain.HistoryEntry `json:"history"`
}

func (a *TranslatorAPI) Init() (InitState, error) {
	ctx := context.Background()
	a.Ready(ctx)
	settings, err := a.d.Store.GetSettings(ctx)
	if err != nil {
		return InitState{}, err
	}
	history, err := a.d.Store.GetHistory(ctx)
	if err != nil {
		return InitState{}, err
	}
	return InitState{Settings: settings, History: history}, nil
}

// Translate dispatches req. When source and target name the same concrete
// language the text is echoed back without a provider call or history entry.
func (a *TranslatorAPI) Translate(req domain.TranslationRequest) (domain.TranslationResult, error) {
	if req.Source != "" && req.Source != domain.SourceAuto && req.Source == req.Target {
		return domain.TranslationResult{Translated: req.Text, DetectedSource: req.Source}, nil
	}
	return a.d.Translator.Translate(context.Background(), req)
}

func (a *TranslatorAPI) UpdateSettings(patch domain.SettingsPatch) (domain.Settings, error) {
	return a.d.Store.UpdateSettings(context.Background(), patch)
}

func (a *TranslatorAPI) GetHistory() ([]domain.HistoryEntry, error) {
	return a.d.Store.GetHistory(context.Background())
}

func (a *TranslatorAPI) ClearHistory() (bool, error) {
	if err := a.d.Store.ClearHistory(context.Background()); err != nil {
		return false, err
	}
	return true, nil
}
