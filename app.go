package main

import (
	"context"
	"encoding/base64"
	"os"
	"sync"

	apiapp "rubick-translator/internal/api/app"
	"rubick-translator/internal/domain"
	"rubick-translator/internal/usecase/importer"

	"github.com/wailsapp/wails/v2/pkg/runtime"
	"go.uber.org/zap"
)

// Events exchanged with the frontend.
const (
	eventToast               = "toast"
	eventSubInputInput       = "subinput:input"
	eventSubInputChange      = "subinput:change"
	eventSubInputPlaceholder = "subinput:placeholder"
	eventSubInputValue       = "subinput:value"
)

// App is the object bound to the frontend. It forwards to TranslatorAPI and
// keeps callback-shaped calls on the Go side.
type App struct {
	ctx context.Context
	api *apiapp.TranslatorAPI
	log *zap.SugaredLogger
}

func NewApp(api *apiapp.TranslatorAPI, log *zap.SugaredLogger) *App {
	return &App{ctx: context.Background(), api: api, log: log}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	a.api.SetHost(&wailsHost{ctx: ctx})
	go a.api.MarkReady(ctx)
}

func (a *App) Ready() bool { return a.api.Ready(a.ctx) }

func (a *App) Init() (apiapp.InitState, error) { return a.api.Init() }

func (a *App) Translate(req domain.TranslationRequest) (domain.TranslationResult, error) {
	return a.api.Translate(req)
}

func (a *App) UpdateSettings(patch domain.SettingsPatch) (domain.Settings, error) {
	return a.api.UpdateSettings(patch)
}

func (a *App) GetHistory() ([]domain.HistoryEntry, error) { return a.api.GetHistory() }

func (a *App) ClearHistory() (bool, error) { return a.api.ClearHistory() }

func (a *App) Toast(msg string) bool { return a.api.Toast(msg) }

// BindSubInput forwards quick-input changes to the frontend as events.
func (a *App) BindSubInput(placeholder string) bool {
	return a.api.BindSubInput(func(e apiapp.SubInputEvent) {
		runtime.EventsEmit(a.ctx, eventSubInputChange, e)
	}, placeholder)
}

func (a *App) SetSubInputValue(value string) bool { return a.api.SetSubInputValue(value) }

func (a *App) Providers() []apiapp.ProviderInfo { return a.api.Providers() }

func (a *App) Languages() []domain.Language { return a.api.Languages() }

func (a *App) TestProvider(kind domain.ProviderKind) (apiapp.ProviderTestResult, error) {
	return a.api.TestProvider(kind)
}

func (a *App) ExportFormats() []string { return a.api.ExportFormats() }

// SaveHistory asks for a destination and writes the history export there.
// An empty path means the dialog was cancelled.
func (a *App) SaveHistory(format string) (string, error) {
	res, err := a.api.ExportHistory(format)
	if err != nil {
		return "", err
	}
	path, err := runtime.SaveFileDialog(a.ctx, runtime.SaveDialogOptions{
		Title:           "Export history",
		DefaultFilename: res.Filename,
		Filters:         []runtime.FileFilter{{DisplayName: format, Pattern: "*." + format}},
	})
	if err != nil || path == "" {
		return "", err
	}
	content, err := base64.StdEncoding.DecodeString(res.ContentB64)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		a.log.Errorw("write history export", "path", path, "error", err)
		return "", err
	}
	a.log.Infow("history exported", "path", path, "format", format)
	return path, nil
}

// LoadHistory asks for a previously exported file and merges it into history.
func (a *App) LoadHistory(format string) (importer.ImportResult, error) {
	path, err := runtime.OpenFileDialog(a.ctx, runtime.OpenDialogOptions{
		Title:   "Import history",
		Filters: []runtime.FileFilter{{DisplayName: format, Pattern: "*." + format}},
	})
	if err != nil || path == "" {
		return importer.ImportResult{}, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return importer.ImportResult{}, err
	}
	res, err := a.api.ImportHistory(format, base64.StdEncoding.EncodeToString(content))
	if err != nil {
		return importer.ImportResult{}, err
	}
	a.log.Infow("history imported", "path", path, "parsed", res.Parsed, "kept", res.Kept)
	return res, nil
}

// wailsHost implements ports.HostBridge over the Wails event bus.
type wailsHost struct {
	ctx context.Context

	mu     sync.Mutex
	unbind func()
}

func (h *wailsHost) Notify(message string) error {
	runtime.EventsEmit(h.ctx, eventToast, message)
	return nil
}

func (h *wailsHost) SetSubInput(onChange func(text string), placeholder string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.unbind != nil {
		h.unbind()
	}
	h.unbind = runtime.EventsOn(h.ctx, eventSubInputInput, func(data ...interface{}) {
		if len(data) == 0 {
			return
		}
		if text, ok := data[0].(string); ok {
			onChange(text)
		}
	})
	runtime.EventsEmit(h.ctx, eventSubInputPlaceholder, placeholder)
	return nil
}

func (h *wailsHost) SetSubInputValue(value string) error {
	runtime.EventsEmit(h.ctx, eventSubInputValue, value)
	return nil
}
