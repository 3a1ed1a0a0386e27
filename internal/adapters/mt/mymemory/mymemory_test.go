package mymemory

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rubick-translator/internal/adapters/mt/httpclient"
	"rubick-translator/internal/domain"
	"rubick-translator/internal/ports"
)

func TestTranslateQuery(t *testing.T) {
	tests := []struct {
		name   string
		email  string
		wantDe string
	}{
		{"without email", "", ""},
		{"with email", "me@example.com", "me@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet || r.URL.Path != "/get" {
					t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
				}
				q := r.URL.Query()
				if q.Get("q") != "hello world" {
					t.Errorf("q = %q", q.Get("q"))
				}
				if q.Get("langpair") != "auto|zh" {
					t.Errorf("langpair = %q", q.Get("langpair"))
				}
				if _, ok := q["de"]; ok != (tt.wantDe != "") || q.Get("de") != tt.wantDe {
					t.Errorf("de = %q, want %q", q.Get("de"), tt.wantDe)
				}
				_, _ = w.Write([]byte(`{"responseData":{"translatedText":"你好世界","match":1},"responseStatus":200}`))
			}))
			defer srv.Close()

			c := New(httpclient.New(5*time.Second), srv.URL, tt.email)
			res, err := c.Translate(context.Background(), ports.ProviderRequest{Text: "hello world", Source: "auto", Target: "zh"})
			if err != nil {
				t.Fatalf("Translate: %v", err)
			}
			if res.Translated != "你好世界" {
				t.Errorf("Translated = %q", res.Translated)
			}
			if res.DetectedSource != "en" {
				t.Errorf("DetectedSource = %q, want en", res.DetectedSource)
			}
		})
	}
}

func TestTranslateDetectedSource(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		source string
		text   string
		want   domain.TranslationResult
	}{
		{"provider detection", `{"responseData":{"translatedText":"hi","detectedLanguage":"ja"}}`, "auto", "こんにちは", domain.TranslationResult{Translated: "hi", DetectedSource: "ja"}},
		{"null detection uses heuristic", `{"responseData":{"translatedText":"hello","detectedLanguage":null}}`, "auto", "你好", domain.TranslationResult{Translated: "hello", DetectedSource: "zh"}},
		{"explicit source", `{"responseData":{"translatedText":"hello"}}`, "fr", "bonjour", domain.TranslationResult{Translated: "hello", DetectedSource: "fr"}},
		{"missing responseData", `{"responseStatus":403,"responseDetails":"quota"}`, "auto", "hello", domain.TranslationResult{Translated: "", DetectedSource: "en"}},
		{"garbage", `not json`, "auto", "hello", domain.TranslationResult{Translated: "", DetectedSource: "en"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New(httpclient.New(5*time.Second), srv.URL, "")
			res, err := c.Translate(context.Background(), ports.ProviderRequest{Text: tt.text, Source: tt.source, Target: "en"})
			if err != nil {
				t.Fatalf("Translate: %v", err)
			}
			if res != tt.want {
				t.Errorf("got %+v, want %+v", res, tt.want)
			}
		})
	}
}

func TestTranslateNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(httpclient.New(time.Second), url, "")
	_, err := c.Translate(context.Background(), ports.ProviderRequest{Text: "hello", Source: "auto", Target: "zh"})
	var ne *domain.NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}
