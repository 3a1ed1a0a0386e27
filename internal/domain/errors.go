package domain

import (
	"fmt"
	"time"
)

// TimeoutError reports a provider call that missed its deadline.
type TimeoutError struct {
	Provider ProviderKind
	After    time.Duration
}

func (e *TimeoutError) Error() string { return "Request timeout" }

// NetworkError wraps a transport failure talking to a provider.
type NetworkError struct {
	Provider ProviderKind
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Provider, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ConfigError reports a missing or rejected provider credential.
type ConfigError struct {
	Provider ProviderKind
	Field    string
	Reason   string
}

func (e *ConfigError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: invalid configuration %s: %s", e.Provider, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: missing configuration %s", e.Provider, e.Field)
}

type UnsupportedProviderError struct {
	Provider ProviderKind
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("unsupported provider: %q", string(e.Provider))
}
