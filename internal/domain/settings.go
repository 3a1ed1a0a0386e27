package domain

// SettingsDocID addresses the settings document in the store.
const SettingsDocID = "rubick-translator/settings"

// Settings is always returned fully defaulted; the stored document may be partial.
type Settings struct {
	LastProvider          ProviderKind `json:"lastProvider"`
	LastSourceLang        string       `json:"lastSourceLang"`
	LastTargetLang        string       `json:"lastTargetLang"`
	LibreTranslateBaseURL string       `json:"libretranslateBaseUrl"`
	MyMemoryEmail         string       `json:"mymemoryEmail"`
	ThemeMode             string       `json:"themeMode"`
	TencentSID            string       `json:"tencent_SID"`
	TencentSKey           string       `json:"tencent_SKEY"`
}

const DefaultLibreTranslateBaseURL = "https://libretranslate.com"

func DefaultSettings() Settings {
	return Settings{
		LastProvider:          ProviderGoogle,
		LastSourceLang:        SourceAuto,
		LastTargetLang:        "zh",
		LibreTranslateBaseURL: DefaultLibreTranslateBaseURL,
		MyMemoryEmail:         "",
		ThemeMode:             "system",
		TencentSID:            "",
		TencentSKey:           "",
	}
}

// SettingsPatch is a shallow partial update keyed by the JSON field names of Settings.
type SettingsPatch map[string]any
