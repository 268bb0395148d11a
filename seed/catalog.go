/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package seed

import (
	"fmt"
	"sort"
	"strings"
)

type Stroke string

const (
	StrokeIM     Stroke = "im"
	StrokeFly    Stroke = "fly"
	StrokeBack   Stroke = "ba"
	StrokeBreast Stroke = "br"
	StrokeFree   Stroke = "fr"
)

// Strokes lists every stroke in program order.
var Strokes = []Stroke{StrokeIM, StrokeFly, StrokeBack, StrokeBreast,
	StrokeFree}

// Event identifies one race by stroke and distance in meters.
type Event struct {
	Stroke   Stroke
	Distance int
}

func (e Event) String() string {
	return fmt.Sprintf("%d%s", e.Distance, e.Stroke)
}

// Sex is an athlete's competition sex. The zero value is SexUnknown, which
// has no program.
type Sex int

const (
	SexUnknown Sex = iota
	SexMale
	SexFemale
)

func (s Sex) String() string {
	if s == SexMale {
		return "male"
	} else if s == SexFemale {
		return "female"
	} else {
		return "?"
	}
}

// Category selects which athletes compete together in a seeding run.
type Category int

const (
	CategoryMale Category = iota
	CategoryFemale
	CategoryMixed
)

// Categories lists every category in display order.
var Categories = []Category{CategoryMale, CategoryFemale, CategoryMixed}

func (c Category) String() string {
	switch c {
	case CategoryMale:
		return "male"
	case CategoryFemale:
		return "female"
	case CategoryMixed:
		return "mixed"
	}
	return "?"
}

// ParseCategory accepts "male", "female" or "mixed" in any case.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return CategoryMale, nil
	case "female":
		return CategoryFemale, nil
	case "mixed":
		return CategoryMixed, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// CategoryFor returns the sex-specific category an athlete belongs to. The
// second result is false for SexUnknown.
func CategoryFor(s Sex) (Category, bool) {
	switch s {
	case SexMale:
		return CategoryMale, true
	case SexFemale:
		return CategoryFemale, true
	}
	return 0, false
}

// Catalog holds the legal distances for every category and stroke. A Catalog
// is never mutated after NewCatalog returns and may be shared between
// goroutines.
type Catalog struct {
	events map[Category]map[Stroke][]int
}

// NewCatalog builds a catalog from the distances shared by both sexes and
// the per-sex freestyle distances. The mixed category copies the shared
// distances and swims the sorted union of both freestyle lists.
func NewCatalog(common map[Stroke][]int, maleFree []int,
	femaleFree []int) *Catalog {

	build := func(free []int) map[Stroke][]int {
		m := make(map[Stroke][]int, len(common)+1)
		for stroke, dists := range common {
			m[stroke] = append([]int(nil), dists...)
		}
		m[StrokeFree] = append([]int(nil), free...)
		return m
	}

	return &Catalog{
		events: map[Category]map[Stroke][]int{
			CategoryMale:   build(maleFree),
			CategoryFemale: build(femaleFree),
			CategoryMixed:  build(unionSorted(maleFree, femaleFree)),
		},
	}
}

// DefaultCatalog returns the standard short-course championship program.
func DefaultCatalog() *Catalog {
	return NewCatalog(map[Stroke][]int{
		StrokeIM:     {100, 200, 400},
		StrokeFly:    {50, 100, 200},
		StrokeBack:   {50, 100, 200},
		StrokeBreast: {50, 100, 200},
	},
		[]int{50, 100, 200, 400, 1500},
		[]int{50, 100, 200, 400, 800})
}

// EventsFor returns a copy of the stroke -> distances mapping for cat. An
// unknown category yields an empty mapping.
func (c *Catalog) EventsFor(cat Category) map[Stroke][]int {
	src := c.events[cat]
	out := make(map[Stroke][]int, len(src))
	for stroke, dists := range src {
		out[stroke] = append([]int(nil), dists...)
	}
	return out
}

// Events lists every event of cat in program order: by stroke in Strokes
// order, then by the catalog's distance order.
func (c *Catalog) Events(cat Category) []Event {
	src := c.events[cat]
	var out []Event
	for _, stroke := range orderedStrokes(src) {
		for _, d := range src[stroke] {
			out = append(out, Event{Stroke: stroke, Distance: d})
		}
	}
	return out
}

// Has reports whether ev is swum in cat.
func (c *Catalog) Has(cat Category, ev Event) bool {
	for _, d := range c.events[cat][ev.Stroke] {
		if d == ev.Distance {
			return true
		}
	}
	return false
}

// orderedStrokes returns the strokes of m, known strokes first in program
// order and any others lexicographically.
func orderedStrokes(m map[Stroke][]int) []Stroke {
	out := make([]Stroke, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return strokeLess(out[i], out[j]) })

	return out
}

// strokeLess orders known strokes by program order ahead of unknown ones.
func strokeLess(a Stroke, b Stroke) bool {
	ai, bi := strokeIndex(a), strokeIndex(b)
	if ai != bi {
		return ai < bi
	}
	return a < b
}

func strokeIndex(s Stroke) int {
	for i, known := range Strokes {
		if s == known {
			return i
		}
	}
	return len(Strokes)
}

func unionSorted(a []int, b []int) []int {
	seen := make(map[int]bool, len(a)+len(b))
	var out []int
	for _, list := range [][]int{a, b} {
		for _, v := range list {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	sort.Ints(out)

	return out
}
