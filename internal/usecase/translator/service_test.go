package translator

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"rubick-translator/internal/adapters/db/memory"
	"rubick-translator/internal/adapters/mt/google"
	"rubick-translator/internal/adapters/mt/httpclient"
	"rubick-translator/internal/adapters/mt/registry"
	"rubick-translator/internal/domain"
	"rubick-translator/internal/ports"
	"rubick-translator/internal/usecase/store"
)

type recordingProvider struct {
	kind domain.ProviderKind
	mu   sync.Mutex
	reqs []ports.ProviderRequest
	res  domain.TranslationResult
	err  error
}

func (p *recordingProvider) Kind() domain.ProviderKind { return p.kind }

func (p *recordingProvider) Translate(ctx context.Context, req ports.ProviderRequest) (domain.TranslationResult, error) {
	p.mu.Lock()
	p.reqs = append(p.reqs, req)
	p.mu.Unlock()
	return p.res, p.err
}

func (p *recordingProvider) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.reqs)
}

// hangingProvider blocks until its context is cancelled.
type hangingProvider struct{ cancelled chan struct{} }

func (p *hangingProvider) Kind() domain.ProviderKind { return "hang" }

func (p *hangingProvider) Translate(ctx context.Context, req ports.ProviderRequest) (domain.TranslationResult, error) {
	<-ctx.Done()
	close(p.cancelled)
	return domain.TranslationResult{}, ctx.Err()
}

func register(r *registry.Registry, p ports.Provider, deadline time.Duration) {
	r.Register(p.Kind(), registry.Entry{
		Deadline: deadline,
		Build:    func(domain.Settings) (ports.Provider, error) { return p, nil },
	})
}

func newService(t *testing.T) (*Service, *registry.Registry, *store.Service) {
	t.Helper()
	reg := registry.New()
	st := store.New(memory.New(), nil)
	return New(Deps{Providers: reg, Store: st}), reg, st
}

func history(t *testing.T, st *store.Service) []domain.HistoryEntry {
	t.Helper()
	items, err := st.GetHistory(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return items
}

type countingStore struct {
	*store.Service
	reads int
}

func (c *countingStore) GetSettings(ctx context.Context) (domain.Settings, error) {
	c.reads++
	return c.Service.GetSettings(ctx)
}

func TestTranslateEmptyText(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		source string
		want   string
	}{
		{"empty", "", "", "auto"},
		{"whitespace", "  \n\t ", "", "auto"},
		{"explicit source", " ", "ja", "ja"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := registry.New()
			p := &recordingProvider{kind: domain.ProviderGoogle}
			register(reg, p, time.Second)
			cs := &countingStore{Service: store.New(memory.New(), nil)}
			svc := New(Deps{Providers: reg, Store: cs})

			res, err := svc.Translate(context.Background(), domain.TranslationRequest{Text: tt.text, Source: tt.source, Provider: domain.ProviderGoogle})
			if err != nil {
				t.Fatal(err)
			}
			if res.Translated != "" || res.DetectedSource != tt.want {
				t.Errorf("res = %+v", res)
			}
			if cs.reads != 0 || p.calls() != 0 {
				t.Errorf("reads=%d calls=%d, want none", cs.reads, p.calls())
			}
			if n := len(history(t, cs.Service)); n != 0 {
				t.Errorf("history len = %d", n)
			}
		})
	}
}

func TestTranslateUnsupportedProvider(t *testing.T) {
	svc, _, st := newService(t)
	_, err := svc.Translate(context.Background(), domain.TranslationRequest{Text: "hi", Provider: "bogus", Target: "zh"})
	var ue *domain.UnsupportedProviderError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UnsupportedProviderError, got %v", err)
	}
	if n := len(history(t, st)); n != 0 {
		t.Errorf("history len = %d", n)
	}
}

func TestTranslateTimeout(t *testing.T) {
	svc, reg, st := newService(t)
	p := &hangingProvider{cancelled: make(chan struct{})}
	const deadline = 60 * time.Millisecond
	register(reg, p, deadline)

	start := time.Now()
	_, err := svc.Translate(context.Background(), domain.TranslationRequest{Text: "hello", Provider: "hang"})
	elapsed := time.Since(start)

	var te *domain.TimeoutError
	if !errors.As(err, &te) {
		t.Fatalf("expected TimeoutError, got %v", err)
	}
	if err.Error() != "Request timeout" {
		t.Errorf("message = %q", err.Error())
	}
	if elapsed < deadline {
		t.Errorf("returned after %v, before the %v deadline", elapsed, deadline)
	}
	if elapsed > deadline+time.Second {
		t.Errorf("returned after %v, too late", elapsed)
	}
	select {
	case <-p.cancelled:
	case <-time.After(time.Second):
		t.Error("provider context was not cancelled")
	}
	if n := len(history(t, st)); n != 0 {
		t.Errorf("history len = %d", n)
	}
}

func TestTranslateProviderErrorVerbatim(t *testing.T) {
	svc, reg, st := newService(t)
	cause := &domain.ConfigError{Provider: domain.ProviderTencent, Field: "tencent_SID"}
	register(reg, &recordingProvider{kind: domain.ProviderTencent, err: cause}, time.Second)

	_, err := svc.Translate(context.Background(), domain.TranslationRequest{Text: "hello", Provider: domain.ProviderTencent})
	if err != cause {
		t.Fatalf("err = %v, want the provider's error", err)
	}
	if n := len(history(t, st)); n != 0 {
		t.Errorf("history len = %d", n)
	}
}

func TestTranslateResolvesDefaults(t *testing.T) {
	tests := []struct {
		name          string
		clearProvider bool
		req           domain.TranslationRequest
		wantProvider  domain.ProviderKind
		wantSource    string
		wantTarget    string
	}{
		{
			name:         "settings provider",
			req:          domain.TranslationRequest{Text: "hello"},
			wantProvider: domain.ProviderGoogle,
			wantSource:   "auto",
			wantTarget:   "zh",
		},
		{
			name:          "stored empty provider falls back to libretranslate",
			clearProvider: true,
			req:           domain.TranslationRequest{Text: "你好"},
			wantProvider:  domain.ProviderLibreTranslate,
			wantSource:    "auto",
			wantTarget:    "en",
		},
		{
			name:         "explicit fields win",
			req:          domain.TranslationRequest{Text: "  hallo ", Provider: domain.ProviderMyMemory, Source: "de", Target: "fr"},
			wantProvider: domain.ProviderMyMemory,
			wantSource:   "de",
			wantTarget:   "fr",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, reg, st := newService(t)
			providers := map[domain.ProviderKind]*recordingProvider{}
			for _, k := range domain.AllProviders() {
				p := &recordingProvider{kind: k, res: domain.TranslationResult{Translated: "out", DetectedSource: "xx"}}
				providers[k] = p
				register(reg, p, time.Second)
			}
			if tt.clearProvider {
				if _, err := st.UpdateSettings(context.Background(), domain.SettingsPatch{"lastProvider": ""}); err != nil {
					t.Fatal(err)
				}
			}

			res, err := svc.Translate(context.Background(), tt.req)
			if err != nil {
				t.Fatal(err)
			}
			if res.Translated != "out" {
				t.Errorf("Translated = %q", res.Translated)
			}
			p := providers[tt.wantProvider]
			if p.calls() != 1 {
				t.Fatalf("provider %s calls = %d", tt.wantProvider, p.calls())
			}
			got := p.reqs[0]
			if got.Source != tt.wantSource || got.Target != tt.wantTarget {
				t.Errorf("request = %+v", got)
			}

			items := history(t, st)
			if len(items) != 1 {
				t.Fatalf("history len = %d", len(items))
			}
			h := items[0]
			if h.Provider != tt.wantProvider || h.Source != tt.wantSource || h.Target != tt.wantTarget ||
				h.Translated != "out" || h.DetectedSource != "xx" || h.TS == 0 {
				t.Errorf("history entry = %+v", h)
			}
			if h.Text != got.Text {
				t.Errorf("history text %q != request text %q", h.Text, got.Text)
			}
		})
	}
}

func TestTranslateHeuristicDetectedSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[[["translated",null]]]`))
	}))
	defer srv.Close()

	tests := []struct {
		text string
		want string
	}{
		{"你好", "zh"},
		{"hello", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			svc, reg, _ := newService(t)
			g := google.New(httpclient.New(time.Second), srv.URL)
			register(reg, g, time.Second)

			res, err := svc.Translate(context.Background(), domain.TranslationRequest{Text: tt.text, Provider: domain.ProviderGoogle, Source: "auto"})
			if err != nil {
				t.Fatal(err)
			}
			if res.DetectedSource != tt.want {
				t.Errorf("DetectedSource = %q, want %q", res.DetectedSource, tt.want)
			}
			if res.Translated != "translated" {
				t.Errorf("Translated = %q", res.Translated)
			}
		})
	}
}

func TestTranslateOverlappingCallsIndependent(t *testing.T) {
	svc, reg, st := newService(t)
	p := &recordingProvider{kind: domain.ProviderGoogle, res: domain.TranslationResult{Translated: "ok", DetectedSource: "en"}}
	register(reg, p, time.Second)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Translate(context.Background(), domain.TranslationRequest{Text: "hello", Provider: domain.ProviderGoogle})
		}()
	}
	wg.Wait()
	if p.calls() != 5 {
		t.Errorf("calls = %d, want 5", p.calls())
	}
	if n := len(history(t, st)); n < 1 || n > 5 {
		t.Errorf("history len = %d", n)
	}
}
