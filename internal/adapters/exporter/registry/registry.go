package registry

import (
	"sort"

	"rubick-translator/internal/adapters/exporter/csv"
	"rubick-translator/internal/adapters/exporter/jsonexport"
	"rubick-translator/internal/ports"
)

type Registry struct{ byFormat map[string]ports.Exporter }

func New() *Registry { return &Registry{byFormat: map[string]ports.Exporter{}} }

// Default holds csv, tsv and json.
func Default() *Registry {
	r := New()
	r.Register(csv.New())
	r.Register(csv.NewTSV())
	r.Register(jsonexport.New())
	return r
}

func (r *Registry) Register(e ports.Exporter) { r.byFormat[e.Format()] = e }

func (r *Registry) Get(format string) (ports.Exporter, bool) {
	e, ok := r.byFormat[format]
	return e, ok
}

func (r *Registry) Formats() []string {
	out := make([]string, 0, len(r.byFormat))
	for f := range r.byFormat {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
