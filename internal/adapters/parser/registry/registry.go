package registry

import (
	"sort"

	csvparser "rubick-translator/internal/adapters/parser/csv"
	"rubick-translator/internal/adapters/parser/jsonimport"
	"rubick-translator/internal/ports"
)

type Registry struct {
	byFormat map[string]ports.Parser
}

func New() *Registry { return &Registry{byFormat: map[string]ports.Parser{}} }

// Default understands every format the exporters write.
func Default() *Registry {
	r := New()
	r.Register(csvparser.New())
	r.Register(csvparser.NewTSV())
	r.Register(jsonimport.New())
	return r
}

func (r *Registry) Register(p ports.Parser) { r.byFormat[p.Format()] = p }

func (r *Registry) Get(format string) (ports.Parser, bool) {
	p, ok := r.byFormat[format]
	return p, ok
}

func (r *Registry) Formats() []string {
	out := make([]string, 0, len(r.byFormat))
	for f := range r.byFormat {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
