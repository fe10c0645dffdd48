// Per-scheduler parameter declarations consumed by the node builder and reactor
package catalog

import (
	"sort"

	mapset "github.com/deckarep/golang-set"

	"scheduler-node-editor/internal/util"
)

// Kind is the widget kind a parameter declaration asks for. Only
// KindNumber is instantiated by the widget set builder; the remaining
// kinds are reserved.
type Kind string

const (
	KindNumber Kind = "number"
	KindString Kind = "string"
	KindCombo  Kind = "combo"
	KindToggle Kind = "toggle"
)

// Declaration describes one parameter of a scheduler. Declarations are
// read-only configuration; they are never mutated after the catalog is
// built.
type Declaration struct {
	Kind    Kind
	Default float64
	Min     float64
	Max     float64
	Step    float64
	Round   float64
}

// Catalog maps a scheduler name to the parameters it exposes.
type Catalog map[string]map[string]Declaration

// Params returns the parameter table for a scheduler. An unknown
// scheduler yields an empty table and ok=false.
func (c Catalog) Params(scheduler string) (map[string]Declaration, bool) {
	params, ok := c[scheduler]
	if !ok {
		return map[string]Declaration{}, false
	}
	return params, true
}

// Schedulers returns all scheduler names in sorted order.
func (c Catalog) Schedulers() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParamNames returns the sorted parameter names declared for one scheduler.
func (c Catalog) ParamNames(scheduler string) []string {
	names := make([]string, 0, len(c[scheduler]))
	for name := range c[scheduler] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AllParamNames returns the union of every parameter name declared under
// any scheduler. This is the full universe of toggle-able widgets.
func (c Catalog) AllParamNames() mapset.Set {
	all := mapset.NewSet()
	for _, params := range c {
		for name := range params {
			all.Add(name)
		}
	}
	return all
}

// Closest returns the known scheduler name nearest to the given one by
// edit distance, for "did you mean" logging. Returns "" on an empty
// catalog.
func (c Catalog) Closest(scheduler string) string {
	best := ""
	bestDist := -1
	for _, name := range c.Schedulers() {
		d := util.Levenshtein(scheduler, name)
		if bestDist < 0 || d < bestDist {
			best = name
			bestDist = d
		}
	}
	return best
}
