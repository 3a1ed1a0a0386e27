package registry

import (
	"sort"
	"sync"
	"time"

	"rubick-translator/internal/adapters/mt/google"
	"rubick-translator/internal/adapters/mt/httpclient"
	"rubick-translator/internal/adapters/mt/libretranslate"
	"rubick-translator/internal/adapters/mt/mymemory"
	"rubick-translator/internal/adapters/mt/tencent"
	"rubick-translator/internal/config"
	"rubick-translator/internal/domain"
	"rubick-translator/internal/ports"
)

// Builder binds a provider to the options found in the current settings.
type Builder func(s domain.Settings) (ports.Provider, error)

type Entry struct {
	Build    Builder
	Deadline time.Duration
}

// Registry maps each ProviderKind to its builder and deadline.
type Registry struct {
	mu      sync.RWMutex
	entries map[domain.ProviderKind]Entry
}

func New() *Registry {
	return &Registry{entries: make(map[domain.ProviderKind]Entry)}
}

func (r *Registry) Register(kind domain.ProviderKind, e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[kind] = e
}

func (r *Registry) Build(kind domain.ProviderKind, s domain.Settings) (ports.Provider, error) {
	r.mu.RLock()
	e, ok := r.entries[kind]
	r.mu.RUnlock()
	if !ok || e.Build == nil {
		return nil, &domain.UnsupportedProviderError{Provider: kind}
	}
	return e.Build(s)
}

// Deadline returns the per-call budget for kind, falling back to the default
// provider deadline for unknown kinds or unset entries.
func (r *Registry) Deadline(kind domain.ProviderKind) time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.entries[kind]; ok && e.Deadline > 0 {
		return e.Deadline
	}
	return domain.DefaultProviderDeadline
}

func (r *Registry) Kinds() []domain.ProviderKind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ProviderKind, 0, len(r.entries))
	for k := range r.entries {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Default wires the four built-in providers. The HTTP adapters share one
// transport.
func Default(cfg config.Config) *Registry {
	backstop := cfg.Timeouts.Default
	if cfg.Timeouts.Tencent > backstop {
		backstop = cfg.Timeouts.Tencent
	}
	http := httpclient.New(backstop)

	r := New()
	r.Register(domain.ProviderLibreTranslate, Entry{
		Deadline: cfg.Timeouts.Default,
		Build: func(s domain.Settings) (ports.Provider, error) {
			return libretranslate.New(http, s.LibreTranslateBaseURL, cfg.Endpoints.LibreTranslate), nil
		},
	})
	r.Register(domain.ProviderMyMemory, Entry{
		Deadline: cfg.Timeouts.Default,
		Build: func(s domain.Settings) (ports.Provider, error) {
			return mymemory.New(http, cfg.Endpoints.MyMemory, s.MyMemoryEmail), nil
		},
	})
	r.Register(domain.ProviderGoogle, Entry{
		Deadline: cfg.Timeouts.Default,
		Build: func(s domain.Settings) (ports.Provider, error) {
			return google.New(http, cfg.Endpoints.Google), nil
		},
	})
	r.Register(domain.ProviderTencent, Entry{
		Deadline: cfg.Timeouts.Tencent,
		Build: func(s domain.Settings) (ports.Provider, error) {
			return tencent.New(tencent.Options{
				SecretID:  s.TencentSID,
				SecretKey: s.TencentSKey,
				Region:    cfg.Tencent.Region,
				Endpoint:  cfg.Tencent.Endpoint,
			}), nil
		},
	})
	return r
}
