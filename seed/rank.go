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

// Entry is one athlete's seed in a single event.
type Entry struct {
	Athlete *Athlete
	Token   string
	Time    float64
}

// Ranker orders the entrants of an event by entry time.
type Ranker struct {
	catalog *Catalog
}

func NewRanker(catalog *Catalog) *Ranker {
	return &Ranker{catalog: catalog}
}

// Rank returns the athletes of cat entered in ev, fastest first. The male
// and female categories only consider athletes of that sex; mixed considers
// everyone. An event outside the category's program yields an empty ranking.
// Equal times keep roster order. Any malformed token fails the whole ranking
// with a *TimeFormatError.
func (r *Ranker) Rank(athletes []*Athlete, ev Event,
	cat Category) ([]Entry, error) {

	if cat != CategoryMale && cat != CategoryFemale && cat != CategoryMixed {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCategory, int(cat))
	}
	if !r.catalog.Has(cat, ev) {
		return []Entry{}, nil
	}

	entries := make([]Entry, 0, len(athletes))
	for _, a := range athletes {
		if own, ok := CategoryFor(a.Sex); !ok ||
			(cat != CategoryMixed && own != cat) {

			continue
		}
		token, ok := a.Time(ev)
		if !ok {
			continue
		}
		token = strings.TrimSpace(token)
		if isUnset(token) {
			continue
		}
		t, err := ParseTime(token)
		if err != nil {
			return nil, fmt.Errorf("seed.rank: athlete %v in %v: %w", a.ID, ev,
				err)
		}
		entries = append(entries, Entry{Athlete: a, Token: token, Time: t})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time < entries[j].Time
	})

	return entries, nil
}
