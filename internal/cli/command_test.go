package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := CreateRootCommand(NewFlags())
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// googleStub serves a fixed Google-compatible answer and writes a config
// file pointing at it.
func googleStub(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/translate_a/single" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`[[["你好","hello"]],null,"en"]`))
	}))
	t.Cleanup(srv.Close)

	cfg := filepath.Join(t.TempDir(), "rtrans.yaml")
	content := "log:\n  level: error\nendpoints:\n  google: " + srv.URL + "\n"
	if err := os.WriteFile(cfg, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestCreateRootCommand(t *testing.T) {
	cmd := CreateRootCommand(NewFlags())
	if cmd.Use != "rtrans" {
		t.Errorf("Use = %q", cmd.Use)
	}

	for _, name := range []string{"config", "db", "log-level", "ephemeral", "output"} {
		t.Run("flag_"+name, func(t *testing.T) {
			if cmd.PersistentFlags().Lookup(name) == nil {
				t.Errorf("Expected flag %s to exist", name)
			}
		})
	}

	for _, path := range [][]string{{"translate"}, {"history", "list"}, {"history", "clear"}, {"history", "export"}, {"history", "import"}, {"settings", "get"}, {"settings", "set"}, {"providers"}} {
		found, _, err := cmd.Find(path)
		if err != nil || found.Name() != path[len(path)-1] {
			t.Errorf("command %v not found: %v", path, err)
		}
	}
}

func TestTranslateCommand(t *testing.T) {
	cfg := googleStub(t)

	out, err := execute(t, "--config", cfg, "--ephemeral", "translate", "-p", "google", "-t", "zh", "hello")
	if err != nil {
		t.Fatal(err)
	}
	if out != "你好\n" {
		t.Errorf("out = %q", out)
	}

	out, err = execute(t, "--config", cfg, "--ephemeral", "-o", "yaml", "translate", "-p", "google", "hello")
	if err != nil {
		t.Fatal(err)
	}
	if out != "detectedSource: en\ntranslated: 你好\n" {
		t.Errorf("yaml out = %q", out)
	}
}

func TestTranslateCommandUnsupportedProvider(t *testing.T) {
	cfg := googleStub(t)
	_, err := execute(t, "--config", cfg, "--ephemeral", "translate", "-p", "bogus", "hello")
	if err == nil || !strings.Contains(err.Error(), "unsupported provider") {
		t.Fatalf("err = %v", err)
	}
}

func TestHistoryCommands(t *testing.T) {
	cfg := googleStub(t)
	db := filepath.Join(t.TempDir(), "rtrans.db")

	if _, err := execute(t, "--config", cfg, "--db", db, "translate", "-p", "google", "-t", "zh", "hello"); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--config", cfg, "--db", db, "history", "export", "--format", "csv")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || lines[0] != "ts,provider,source,target,detectedSource,text,translated" {
		t.Fatalf("csv = %q", out)
	}
	if !strings.HasSuffix(lines[1], ",google,auto,zh,en,hello,你好") {
		t.Errorf("row = %q", lines[1])
	}

	file := filepath.Join(t.TempDir(), "h.json")
	if _, err := execute(t, "--config", cfg, "--db", db, "history", "export", "-f", "json", "--out", file); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(file)
	if err != nil || !strings.Contains(string(b), `"translated": "你好"`) {
		t.Errorf("json export = %s, %v", b, err)
	}

	db2 := filepath.Join(t.TempDir(), "other.db")
	out, err = execute(t, "--config", cfg, "--db", db2, "history", "import", file)
	if err != nil {
		t.Fatal(err)
	}
	if out != "parsed 1, kept 1\n" {
		t.Errorf("import out = %q", out)
	}

	out, err = execute(t, "--config", cfg, "--db", db, "history", "list")
	if err != nil || !strings.Contains(out, "hello") {
		t.Errorf("list = %q, %v", out, err)
	}

	if _, err := execute(t, "--config", cfg, "--db", db, "history", "clear"); err != nil {
		t.Fatal(err)
	}
	out, err = execute(t, "--config", cfg, "--db", db, "-o", "yaml", "history", "list")
	if err != nil {
		t.Fatal(err)
	}
	if out != "[]\n" {
		t.Errorf("list after clear = %q", out)
	}
}

func TestSettingsCommands(t *testing.T) {
	cfg := googleStub(t)
	db := filepath.Join(t.TempDir(), "rtrans.db")

	out, err := execute(t, "--config", cfg, "--db", db, "settings", "set", "themeMode=dark", "tencent_SKEY=abcdefgh")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "themeMode: dark") || !strings.Contains(out, "****efgh") {
		t.Errorf("set out = %q", out)
	}

	out, err = execute(t, "--config", cfg, "--db", db, "settings", "get")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "themeMode: dark") || !strings.Contains(out, "lastProvider: google") {
		t.Errorf("get out = %q", out)
	}
}

func TestProvidersCommand(t *testing.T) {
	cfg := googleStub(t)
	out, err := execute(t, "--config", cfg, "--ephemeral", "providers")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"libretranslate", "mymemory", "google", "tencent", "15s", "12s"} {
		if !strings.Contains(out, want) {
			t.Errorf("providers output missing %q:\n%s", want, out)
		}
	}
}

func TestBadOutputFormat(t *testing.T) {
	cfg := googleStub(t)
	if _, err := execute(t, "--config", cfg, "--ephemeral", "-o", "xml", "providers"); err == nil {
		t.Fatal("expected error for unknown output format")
	}
}

func TestParsePatch(t *testing.T) {
	tests := []struct {
		args    []string
		want    map[string]any
		wantErr bool
	}{
		{[]string{"themeMode=dark"}, map[string]any{"themeMode": "dark"}, false},
		{[]string{"mymemoryEmail=a=b@c"}, map[string]any{"mymemoryEmail": "a=b@c"}, false},
		{[]string{"lastTargetLang="}, map[string]any{"lastTargetLang": ""}, false},
		{[]string{"novalue"}, nil, true},
		{[]string{"=x"}, nil, true},
	}
	for _, tt := range tests {
		got, err := parsePatch(tt.args)
		if (err != nil) != tt.wantErr {
			t.Errorf("parsePatch(%v) err = %v", tt.args, err)
			continue
		}
		if tt.wantErr {
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("parsePatch(%v) = %v", tt.args, got)
		}
		for k, v := range tt.want {
			if got[k] != v {
				t.Errorf("parsePatch(%v)[%s] = %v, want %v", tt.args, k, got[k], v)
			}
		}
	}
}
