// Package store keeps the settings and history documents on top of a
// ports.DocumentStore. Every operation is a plain read-then-write; concurrent
// writers race and the last one wins.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"rubick-translator/internal/domain"
	"rubick-translator/internal/ports"

	"go.uber.org/zap"
)

type Service struct {
	docs ports.DocumentStore
	log  *zap.SugaredLogger
	now  func() time.Time
}

func New(docs ports.DocumentStore, log *zap.SugaredLogger) *Service {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Service{docs: docs, log: log, now: time.Now}
}

// SetClock replaces the clock used to stamp history entries.
func (s *Service) SetClock(now func() time.Time) { s.now = now }

// GetSettings returns the stored settings laid over DefaultSettings.
func (s *Service) GetSettings(ctx context.Context) (domain.Settings, error) {
	fields, err := s.settingsFields(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	st, err := decodeSettings(fields)
	if err != nil {
		s.log.Warnw("stored settings unreadable, using defaults", "error", err)
		return domain.DefaultSettings(), nil
	}
	return st, nil
}

// UpdateSettings shallow-merges patch over the stored document and returns the
// merged, defaulted result. Keys unknown to Settings are kept as stored.
func (s *Service) UpdateSettings(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error) {
	fields, err := s.settingsFields(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	for k, v := range patch {
		fields[k] = v
	}
	st, err := decodeSettings(fields)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("invalid settings patch: %w", err)
	}
	body, err := json.Marshal(fields)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("encode settings: %w", err)
	}
	if err := s.docs.Put(ctx, &domain.Document{ID: domain.SettingsDocID, Body: body}); err != nil {
		return domain.Settings{}, fmt.Errorf("save settings: %w", err)
	}
	return st, nil
}

// AddHistory prepends entry and drops anything past HistoryMax.
func (s *Service) AddHistory(ctx context.Context, entry domain.HistoryEntry) error {
	items, err := s.GetHistory(ctx)
	if err != nil {
		return err
	}
	if entry.TS == 0 {
		entry.TS = s.now().UnixMilli()
	}
	items = append([]domain.HistoryEntry{entry}, items...)
	if len(items) > domain.HistoryMax {
		items = items[:domain.HistoryMax]
	}
	return s.putHistory(ctx, items)
}

// GetHistory returns the entries newest first, never nil.
func (s *Service) GetHistory(ctx context.Context) ([]domain.HistoryEntry, error) {
	doc, err := s.docs.Get(ctx, domain.HistoryDocID)
	if errors.Is(err, ports.ErrNotFound) {
		return []domain.HistoryEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	var hd domain.HistoryDocument
	if len(doc.Body) > 0 {
		if err := json.Unmarshal(doc.Body, &hd); err != nil {
			s.log.Warnw("stored history unreadable, treating as empty", "error", err)
		}
	}
	if hd.Items == nil {
		hd.Items = []domain.HistoryEntry{}
	}
	return hd.Items, nil
}

// ImportHistory merges entries into the stored history, newest first by TS,
// skipping exact duplicates and keeping at most HistoryMax. It returns how
// many of the given entries were kept.
func (s *Service) ImportHistory(ctx context.Context, entries []domain.HistoryEntry) (int, error) {
	items, err := s.GetHistory(ctx)
	if err != nil {
		return 0, err
	}
	seen := make(map[domain.HistoryEntry]bool, len(items)+len(entries))
	merged := make([]domain.HistoryEntry, 0, len(items)+len(entries))
	imported := map[domain.HistoryEntry]bool{}
	for _, it := range items {
		seen[it] = true
		merged = append(merged, it)
	}
	for _, e := range entries {
		if seen[e] {
			continue
		}
		seen[e] = true
		imported[e] = true
		merged = append(merged, e)
	}
	sort.SliceStable(merged, func(i, j int) bool { return merged[i].TS > merged[j].TS })
	if len(merged) > domain.HistoryMax {
		merged = merged[:domain.HistoryMax]
	}
	kept := 0
	for _, it := range merged {
		if imported[it] {
			kept++
		}
	}
	if err := s.putHistory(ctx, merged); err != nil {
		return 0, err
	}
	return kept, nil
}

func (s *Service) ClearHistory(ctx context.Context) error {
	return s.putHistory(ctx, []domain.HistoryEntry{})
}

// EnsureDefaults creates the settings and history documents when absent. It
// never touches a document that already exists.
func (s *Service) EnsureDefaults(ctx context.Context) error {
	if _, err := s.docs.Get(ctx, domain.SettingsDocID); err != nil {
		if !errors.Is(err, ports.ErrNotFound) {
			return fmt.Errorf("load settings: %w", err)
		}
		body, _ := json.Marshal(domain.DefaultSettings())
		if err := s.docs.Put(ctx, &domain.Document{ID: domain.SettingsDocID, Body: body}); err != nil {
			return fmt.Errorf("create settings: %w", err)
		}
		s.log.Infow("created default settings")
	}
	if _, err := s.docs.Get(ctx, domain.HistoryDocID); err != nil {
		if !errors.Is(err, ports.ErrNotFound) {
			return fmt.Errorf("load history: %w", err)
		}
		if err := s.putHistory(ctx, []domain.HistoryEntry{}); err != nil {
			return err
		}
		s.log.Infow("created empty history")
	}
	return nil
}

func (s *Service) settingsFields(ctx context.Context) (map[string]any, error) {
	fields := map[string]any{}
	doc, err := s.docs.Get(ctx, domain.SettingsDocID)
	if errors.Is(err, ports.ErrNotFound) {
		return fields, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if len(doc.Body) > 0 {
		if err := json.Unmarshal(doc.Body, &fields); err != nil {
			s.log.Warnw("stored settings unreadable, starting fresh", "error", err)
			fields = map[string]any{}
		}
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

func (s *Service) putHistory(ctx context.Context, items []domain.HistoryEntry) error {
	body, err := json.Marshal(domain.HistoryDocument{Items: items})
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := s.docs.Put(ctx, &domain.Document{ID: domain.HistoryDocID, Body: body}); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

func decodeSettings(fields map[string]any) (domain.Settings, error) {
	st := domain.DefaultSettings()
	b, err := json.Marshal(fields)
	if err != nil {
		return st, err
	}
	if err := json.Unmarshal(b, &st); err != nil {
		return domain.DefaultSettings(), err
	}
	return st, nil
}
