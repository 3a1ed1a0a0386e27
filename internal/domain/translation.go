package domain

// SourceAuto asks the provider to detect the source language.
const SourceAuto = "auto"

type TranslationRequest struct {
	Text     string       `json:"text"`
	Provider ProviderKind `json:"provider"`
	Source   string       `json:"source"`
	Target   string       `json:"target"`
}

// TranslationResult is the normalized provider output. DetectedSource is
// always populated by the provider, the explicit source or the heuristic.
type TranslationResult struct {
	Translated     string `json:"translated"`
	DetectedSource string `json:"detectedSource"`
}

type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Languages returns the selectable languages, "auto" first.
func Languages() []Language {
	return []Language{
		{Code: SourceAuto, Name: "自动"},
		{Code: "zh", Name: "中文"},
		{Code: "en", Name: "English"},
		{Code: "ja", Name: "日本語"},
		{Code: "ko", Name: "한국어"},
		{Code: "fr", Name: "Français"},
		{Code: "de", Name: "Deutsch"},
		{Code: "es", Name: "Español"},
		{Code: "ru", Name: "Русский"},
		{Code: "ar", Name: "العربية"},
		{Code: "pt", Name: "Português"},
		{Code: "it", Name: "Italiano"},
		{Code: "hi", Name: "हिन्दी"},
	}
}
