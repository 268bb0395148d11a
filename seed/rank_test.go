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

func TestRankOrdersByTime(t *testing.T) {
	c := DefaultCatalog()
	ev := Event{StrokeFree, 100}
	roster := []*Athlete{
		newTestAthlete(t, c, "a", SexMale, ev, "1:02.10"),
		newTestAthlete(t, c, "b", SexFemale, ev, "58.40"),
		newTestAthlete(t, c, "c", SexMale, ev, "0"),
		newTestAthlete(t, c, "d", SexFemale, ev, ":59.99"),
		newTestAthlete(t, c, "e", SexMale, ev, "1:00.00"),
		NewAthlete(c, Identity{ID: "f", Sex: SexMale}),
	}

	ranking, err := NewRanker(c).Rank(roster, ev, CategoryMixed)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}
	want := []string{"b", "d", "e", "a"}
	if got := ids(ranking); !reflect.DeepEqual(got, want) {
		t.Fatalf("Rank = %v; want %v", got, want)
	}
	for i := 1; i < len(ranking); i++ {
		if ranking[i-1].Time > ranking[i].Time {
			t.Errorf("ranking not ascending at %d: %v > %v", i,
				ranking[i-1].Time, ranking[i].Time)
		}
	}
}

func TestRankCategoryFilter(t *testing.T) {
	c := DefaultCatalog()
	ev := Event{StrokeBreast, 50}
	roster := []*Athlete{
		newTestAthlete(t, c, "m1", SexMale, ev, "33.00"),
		newTestAthlete(t, c, "f1", SexFemale, ev, "34.00"),
		newTestAthlete(t, c, "m2", SexMale, ev, "32.00"),
	}
	r := NewRanker(c)

	cases := []struct {
		cat  Category
		want []string
	}{
		{cat: CategoryMale, want: []string{"m2", "m1"}},
		{cat: CategoryFemale, want: []string{"f1"}},
		{cat: CategoryMixed, want: []string{"m2", "m1", "f1"}},
	}
	for _, tc := range cases {
		ranking, err := r.Rank(roster, ev, tc.cat)
		if err != nil {
			t.Fatalf("Rank(%v) returned error: %v", tc.cat, err)
		}
		if got := ids(ranking); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Rank(%v) = %v; want %v", tc.cat, got, tc.want)
		}
	}
}

func TestRankEventOutsideCategory(t *testing.T) {
	c := DefaultCatalog()
	ev := Event{StrokeFree, 1500}
	roster := []*Athlete{newTestAthlete(t, c, "m1", SexMale, ev, "17:01.00")}

	ranking, err := NewRanker(c).Rank(roster, ev, CategoryFemale)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}
	if len(ranking) != 0 {
		t.Errorf("Rank(1500fr, female) = %v; want empty", ids(ranking))
	}

	ranking, err = NewRanker(c).Rank(roster, Event{StrokeFree, 25},
		CategoryMixed)
	if err != nil || len(ranking) != 0 {
		t.Errorf("Rank(25fr, mixed) = %v, %v; want empty, nil", ids(ranking),
			err)
	}
}

func TestRankTiesKeepRosterOrder(t *testing.T) {
	c := DefaultCatalog()
	ev := Event{StrokeBack, 100}
	roster := []*Athlete{
		newTestAthlete(t, c, "x", SexMale, ev, "1:05.00"),
		newTestAthlete(t, c, "y", SexMale, ev, "1:05.00"),
		newTestAthlete(t, c, "z", SexMale, ev, "65.00"),
		newTestAthlete(t, c, "w", SexMale, ev, "1:04.00"),
	}
	ranking, err := NewRanker(c).Rank(roster, ev, CategoryMale)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}
	want := []string{"w", "x", "y", "z"}
	if got := ids(ranking); !reflect.DeepEqual(got, want) {
		t.Errorf("Rank = %v; want %v", got, want)
	}
}

func TestRankMalformedTime(t *testing.T) {
	c := DefaultCatalog()
	ev := Event{StrokeFly, 50}
	roster := []*Athlete{
		newTestAthlete(t, c, "ok", SexMale, ev, "28.00"),
		newTestAthlete(t, c, "bad", SexMale, ev, "1:23"),
	}
	_, err := NewRanker(c).Rank(roster, ev, CategoryMale)
	var tfe *TimeFormatError
	if !errors.As(err, &tfe) {
		t.Fatalf("Rank error = %v; want *TimeFormatError", err)
	}
	if tfe.Token != "1:23" {
		t.Errorf("TimeFormatError.Token = %q; want %q", tfe.Token, "1:23")
	}
}

func TestRankDoesNotMutateRoster(t *testing.T) {
	c := DefaultCatalog()
	ev := Event{StrokeFree, 50}
	roster := []*Athlete{
		newTestAthlete(t, c, "slow", SexMale, ev, "30.00"),
		newTestAthlete(t, c, "fast", SexMale, ev, "25.00"),
	}
	if _, err := NewRanker(c).Rank(roster, ev, CategoryMale); err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}
	if roster[0].ID != "slow" || roster[1].ID != "fast" {
		t.Errorf("roster reordered to %v, %v", roster[0].ID, roster[1].ID)
	}
}

func TestRankInvalidCategory(t *testing.T) {
	_, err := NewRanker(DefaultCatalog()).Rank(nil, Event{StrokeFree, 50},
		Category(9))
	if !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("Rank error = %v; want ErrInvalidCategory", err)
	}
}
