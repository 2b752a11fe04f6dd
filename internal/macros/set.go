// Package macros merges preprocessor macro definitions from the build scrape
// with user-supplied supplementary macros, and renders them for the two
// sinks: the editor properties entry (insertion order) and a generated
// C/C++ header (sorted by name).
package macros

import (
	"sort"
	"strings"

	"github.com/mbedtools/mbed-vscode-tools/internal/logging"
)

// Macro is one preprocessor definition, either a bare name or a name/value
// pair. HasValue distinguishes NAME from NAME= (empty value).
type Macro struct {
	Name     string
	Value    string
	HasValue bool
}

// String renders the macro the way it appears in a defines array.
func (m Macro) String() string {
	if m.HasValue {
		return m.Name + "=" + m.Value
	}
	return m.Name
}

// Set collects macros keeping first-insertion order per name. Redefining a
// name with a different value replaces the value in place and logs an
// override warning; the position in the order never moves.
type Set struct {
	order  []string
	byName map[string]Macro
	log    logging.Logger
}

// NewSet creates an empty Set logging override notices to log.
func NewSet(log logging.Logger) *Set {
	return &Set{
		byName: make(map[string]Macro),
		log:    log,
	}
}

// Add parses a raw macro ("NAME" or "NAME=VALUE", split on the first '=')
// and inserts it. A later value for an existing name wins; the override is
// a warning, never an error.
func (s *Set) Add(raw string) {
	macro := parse(raw)

	existing, ok := s.byName[macro.Name]
	if !ok {
		s.order = append(s.order, macro.Name)
		s.byName[macro.Name] = macro
		return
	}

	if existing.Value == macro.Value && existing.HasValue == macro.HasValue {
		return
	}

	s.log.Warn("macro overridden",
		"name", macro.Name,
		"old", existing.String(),
		"new", macro.String())
	s.byName[macro.Name] = macro
}

// AddAll inserts raws in order.
func (s *Set) AddAll(raws []string) {
	for _, raw := range raws {
		s.Add(raw)
	}
}

// Len reports the number of distinct macro names.
func (s *Set) Len() int {
	return len(s.order)
}

// InOrder returns the macros in first-insertion order. This is the policy
// for the editor properties sink.
func (s *Set) InOrder() []Macro {
	out := make([]Macro, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.byName[name])
	}
	return out
}

// Sorted returns the macros sorted ascending by name. This is the policy
// for the generated header sink.
func (s *Set) Sorted() []Macro {
	out := s.InOrder()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Strings renders macros for a defines array.
func Strings(ms []Macro) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.String())
	}
	return out
}

func parse(raw string) Macro {
	if name, value, found := strings.Cut(raw, "="); found {
		return Macro{Name: name, Value: value, HasValue: true}
	}
	return Macro{Name: raw}
}
