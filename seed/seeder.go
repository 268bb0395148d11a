/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package seed

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultMaxEntrants is the number of entrants a printed sheet template can
// hold for a single event.
const DefaultMaxEntrants = 175

type Options struct {
	Pattern LanePattern
	Layout  Layout
	// MaxEntrants caps the field of a single event; 0 disables the cap.
	MaxEntrants int
}

func DefaultOptions() Options {
	return Options{
		Pattern:     SixLanePattern,
		Layout:      DefaultLayout(),
		MaxEntrants: DefaultMaxEntrants,
	}
}

// Seeder runs rank, partition, lane assignment and layout for an event. It
// holds no mutable state and is safe for concurrent use.
type Seeder struct {
	catalog *Catalog
	ranker  *Ranker
	pattern LanePattern
	layout  Layout
	max     int
}

func NewSeeder(catalog *Catalog, opts Options) (*Seeder, error) {
	if err := opts.Pattern.Validate(); err != nil {
		return nil, err
	}
	layout := opts.Layout
	layout.LaneCount = opts.Pattern.Lanes()
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	return &Seeder{
		catalog: catalog,
		ranker:  NewRanker(catalog),
		pattern: append(LanePattern(nil), opts.Pattern...),
		layout:  layout,
		max:     opts.MaxEntrants,
	}, nil
}

func (s *Seeder) Catalog() *Catalog {
	return s.catalog
}

func (s *Seeder) Layout() Layout {
	return s.layout
}

// EventSheet is the seeded result for one event and category.
type EventSheet struct {
	Event    Event
	Category Category
	Ranking  []Entry
	Heats    []Heat
	Blocks   map[int]LayoutBlock
}

// Entrants returns the number of athletes seeded in the event.
func (es *EventSheet) Entrants() int {
	return len(es.Ranking)
}

// SeedEvent seeds a single event. An event without entrants produces a sheet
// with no heats.
func (s *Seeder) SeedEvent(athletes []*Athlete, ev Event,
	cat Category) (*EventSheet, error) {

	ranking, err := s.ranker.Rank(athletes, ev, cat)
	if err != nil {
		return nil, err
	}
	if s.max > 0 && len(ranking) > s.max {
		return nil, fmt.Errorf("%w: %v has %d entrants (max %d)",
			ErrTooManyEntrants, ev, len(ranking), s.max)
	}
	heats, err := Partition(ranking, s.pattern.Lanes())
	if err != nil {
		return nil, err
	}
	for i := range heats {
		heats[i].Lanes, err = s.pattern.Assign(heats[i].Entries)
		if err != nil {
			return nil, fmt.Errorf("seed.seed: %v heat %d: %w", ev, i, err)
		}
	}

	return &EventSheet{
		Event:    ev,
		Category: cat,
		Ranking:  ranking,
		Heats:    heats,
		Blocks:   s.layout.Place(heats, ev.Distance),
	}, nil
}

// SeedAll seeds every event of cat concurrently. Sheets are returned in
// program order; the first failure cancels the remaining work.
func (s *Seeder) SeedAll(ctx context.Context, athletes []*Athlete,
	cat Category) ([]*EventSheet, error) {

	events := s.catalog.Events(cat)
	sheets := make([]*EventSheet, len(events))
	g, ctx := errgroup.WithContext(ctx)

	for i, ev := range events {
		i, ev := i, ev
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sheet, err := s.SeedEvent(athletes, ev, cat)
			if err != nil {
				return err
			}
			sheets[i] = sheet
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return sheets, nil
}

// SheetCell is one populated cell of a printed heat sheet.
type SheetCell struct {
	Cell  Cell
	Value string
}

// Cells flattens the sheet into the cells a spreadsheet template expects:
// for every occupied lane the athlete's name, phonetic name, team and grade
// in four consecutive columns. Cells are ordered by heat then lane.
func (es *EventSheet) Cells(l Layout) []SheetCell {
	var out []SheetCell
	for _, h := range es.Heats {
		block := es.Blocks[h.Index]
		for i, e := range h.Lanes {
			if e == nil {
				continue
			}
			c := l.Cell(block, i+1)
			a := e.Athlete
			values := [CellFields]string{a.Name, a.PhoneticName, a.Team,
				fmt.Sprintf("%d", a.Grade)}
			for off, v := range values {
				out = append(out, SheetCell{
					Cell:  Cell{Row: c.Row, Col: c.Col + off},
					Value: v,
				})
			}
		}
	}

	return out
}
