/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package seed

import (
	"errors"
	"testing"
)

func heatsN(n int) []Heat {
	heats := make([]Heat, n)
	for i := range heats {
		heats[i].Index = i
	}
	return heats
}

func TestPlaceWraps(t *testing.T) {
	l := DefaultLayout()
	blocks := l.Place(heatsN(12), 50)
	for i := 0; i < 12; i++ {
		b := blocks[i]
		wantRow := (i % 6) * 10
		wantCol := (i / 6) * 7
		if b.Row != wantRow || b.Col != wantCol {
			t.Errorf("heat %d block = %+v; want {Row:%d Col:%d}", i, b, wantRow,
				wantCol)
		}
	}
}

func TestPlaceDistanceSpacing(t *testing.T) {
	l := DefaultLayout()
	cases := []struct {
		distance int
		wantCol  int
	}{
		{distance: 50, wantCol: 7},
		{distance: 100, wantCol: 8},
		{distance: 200, wantCol: 10},
		{distance: 400, wantCol: 14},
		{distance: 800, wantCol: 7},
	}
	for _, c := range cases {
		b := l.Place(heatsN(7), c.distance)[6]
		if b.Row != 0 || b.Col != c.wantCol {
			t.Errorf("distance %d heat 6 = %+v; want {Row:0 Col:%d}", c.distance,
				b, c.wantCol)
		}
	}
}

func TestLayoutCell(t *testing.T) {
	l := DefaultLayout()
	b := LayoutBlock{Row: 10, Col: 8}
	if got := l.Cell(b, 1); got != (Cell{Row: 14, Col: 10}) {
		t.Errorf("Cell(lane 1) = %+v; want {Row:14 Col:10}", got)
	}
	if got := l.Cell(b, 6); got != (Cell{Row: 19, Col: 10}) {
		t.Errorf("Cell(lane 6) = %+v; want {Row:19 Col:10}", got)
	}
}

func TestLayoutValidate(t *testing.T) {
	eight := DefaultLayout()
	eight.LaneCount = 8
	tall := eight
	tall.BandHeight = 12
	narrow := DefaultLayout()
	narrow.BaseWidth = 5
	negative := DefaultLayout()
	negative.Spacing = map[int]int{50: -1}

	cases := []struct {
		name  string
		l     Layout
		valid bool
	}{
		{name: "default", l: DefaultLayout(), valid: true},
		{name: "eight lanes in ten rows", l: eight},
		{name: "eight lanes in twelve rows", l: tall, valid: true},
		{name: "narrow", l: narrow},
		{name: "negative spacing", l: negative},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.l.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v; want nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidLayout) {
				t.Errorf("Validate() = %v; want ErrInvalidLayout", err)
			}
		})
	}
}
