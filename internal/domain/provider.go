package domain

import "time"

// ProviderKind identifies one of the machine translation backends.
type ProviderKind string

const (
	ProviderLibreTranslate ProviderKind = "libretranslate"
	ProviderMyMemory       ProviderKind = "mymemory"
	ProviderGoogle         ProviderKind = "google"
	ProviderTencent        ProviderKind = "tencent"
)

// Deadlines used when no configuration overrides them.
const (
	DefaultProviderDeadline = 12 * time.Second
	TencentProviderDeadline = 15 * time.Second
)

// AllProviders lists the supported kinds in display order.
func AllProviders() []ProviderKind {
	return []ProviderKind{ProviderLibreTranslate, ProviderMyMemory, ProviderGoogle, ProviderTencent}
}

func (k ProviderKind) String() string { return string(k) }

// Label is the display name shown in provider pickers.
func (k ProviderKind) Label() string {
	switch k {
	case ProviderLibreTranslate:
		return "LibreTranslate"
	case ProviderMyMemory:
		return "MyMemory"
	case ProviderGoogle:
		return "Google"
	case ProviderTencent:
		return "Tencent"
	}
	return string(k)
}
