package csv

import (
	"testing"

	"rubick-translator/internal/domain"
)

func TestExport(t *testing.T) {
	items := []domain.HistoryEntry{
		{TS: 2, Provider: domain.ProviderGoogle, Source: "auto", Target: "zh", DetectedSource: "en", Text: "hello, world", Translated: "你好，世界"},
		{TS: 1, Provider: domain.ProviderMyMemory, Source: "en", Target: "de", DetectedSource: "en", Text: `say "hi"`, Translated: "sag hallo"},
	}
	tests := []struct {
		name string
		e    *Exporter
		want string
	}{
		{
			name: "csv",
			e:    New(),
			want: "ts,provider,source,target,detectedSource,text,translated\n" +
				"2,google,auto,zh,en,\"hello, world\",你好，世界\n" +
				"1,mymemory,en,de,en,\"say \"\"hi\"\"\",sag hallo\n",
		},
		{
			name: "tsv",
			e:    NewTSV(),
			want: "ts\tprovider\tsource\ttarget\tdetectedSource\ttext\ttranslated\n" +
				"2\tgoogle\tauto\tzh\ten\thello, world\t你好，世界\n" +
				"1\tmymemory\ten\tde\ten\t\"say \"\"hi\"\"\"\tsag hallo\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.e.Format() != tt.name {
				t.Errorf("Format = %q", tt.e.Format())
			}
			got, err := tt.e.Export(items)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("Export =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestExportEmpty(t *testing.T) {
	got, err := New().Export(nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "ts,provider,source,target,detectedSource,text,translated\n" {
		t.Errorf("Export = %q", got)
	}
}
