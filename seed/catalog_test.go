/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package seed

import (
	"errors"
	"reflect"
	"testing"
)

func TestDefaultCatalogFreestyle(t *testing.T) {
	c := DefaultCatalog()
	cases := []struct {
		cat  Category
		want []int
	}{
		{cat: CategoryMale, want: []int{50, 100, 200, 400, 1500}},
		{cat: CategoryFemale, want: []int{50, 100, 200, 400, 800}},
		{cat: CategoryMixed, want: []int{50, 100, 200, 400, 800, 1500}},
	}
	for _, tc := range cases {
		got := c.EventsFor(tc.cat)[StrokeFree]
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%v freestyle = %v; want %v", tc.cat, got, tc.want)
		}
	}
}

func TestCatalogCommonStrokesShared(t *testing.T) {
	c := DefaultCatalog()
	male := c.EventsFor(CategoryMale)
	for _, cat := range []Category{CategoryFemale, CategoryMixed} {
		other := c.EventsFor(cat)
		for _, s := range []Stroke{StrokeIM, StrokeFly, StrokeBack,
			StrokeBreast} {

			if !reflect.DeepEqual(male[s], other[s]) {
				t.Errorf("%v %v = %v; want %v", cat, s, other[s], male[s])
			}
		}
	}
}

func TestCatalogMixedEventsExistInASexCategory(t *testing.T) {
	c := DefaultCatalog()
	for _, ev := range c.Events(CategoryMixed) {
		if !c.Has(CategoryMale, ev) && !c.Has(CategoryFemale, ev) {
			t.Errorf("mixed event %v missing from both sex categories", ev)
		}
	}
}

func TestCatalogEventsOrder(t *testing.T) {
	events := DefaultCatalog().Events(CategoryMale)
	if len(events) != 17 {
		t.Fatalf("len(Events(male)) = %d; want 17", len(events))
	}
	if events[0] != (Event{StrokeIM, 100}) {
		t.Errorf("first event = %v; want 100im", events[0])
	}
	if last := events[len(events)-1]; last != (Event{StrokeFree, 1500}) {
		t.Errorf("last event = %v; want 1500fr", last)
	}
}

func TestCatalogEventsForIsACopy(t *testing.T) {
	c := DefaultCatalog()
	m := c.EventsFor(CategoryMale)
	m[StrokeFree][0] = 25
	delete(m, StrokeIM)

	if !c.Has(CategoryMale, Event{StrokeFree, 50}) {
		t.Errorf("mutating EventsFor result changed the catalog")
	}
	if !c.Has(CategoryMale, Event{StrokeIM, 200}) {
		t.Errorf("deleting from EventsFor result changed the catalog")
	}
}

func TestParseCategory(t *testing.T) {
	for _, cat := range Categories {
		got, err := ParseCategory(cat.String())
		if err != nil || got != cat {
			t.Errorf("ParseCategory(%q) = %v, %v; want %v", cat.String(), got,
				err, cat)
		}
	}
	if got, err := ParseCategory(" Mixed "); err != nil || got != CategoryMixed {
		t.Errorf("ParseCategory(\" Mixed \") = %v, %v; want mixed", got, err)
	}
	if _, err := ParseCategory("coed"); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("ParseCategory(\"coed\") error = %v; want ErrInvalidCategory",
			err)
	}
}
