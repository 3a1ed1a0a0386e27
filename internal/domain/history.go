package domain

// HistoryDocID addresses the history document in the store.
const HistoryDocID = "rubick-translator/history"

// HistoryMax bounds the number of retained history entries.
const HistoryMax = 30

type HistoryEntry struct {
	Text           string       `json:"text"`
	Translated     string       `json:"translated"`
	Provider       ProviderKind `json:"provider"`
	Source         string       `json:"source"`
	Target         string       `json:"target"`
	DetectedSource string       `json:"detectedSource"`
	TS             int64        `json:"ts"` // unix millis
}

// HistoryDocument keeps entries newest first.
type HistoryDocument struct {
	Items []HistoryEntry `json:"items"`
}
