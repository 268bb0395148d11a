/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package seed

import (
	"fmt"
	"testing"
)

// newTestAthlete builds an athlete entered in ev with token.
func newTestAthlete(t *testing.T, c *Catalog, id string, sex Sex, ev Event,
	token string) *Athlete {

	t.Helper()
	a := NewAthlete(c, Identity{
		ID:   id,
		Name: "Swimmer " + id,
		Team: "Team " + id,
		Sex:  sex,
	})
	if err := a.SetTime(ev, token); err != nil {
		t.Fatalf("SetTime(%v, %q) for %v: %v", ev, token, id, err)
	}
	return a
}

// entriesWithTimes builds a fastest-first ranking of n entrants whose ids
// are p1..pn and whose times are 30.00, 31.00, ...
func entriesWithTimes(n int) []Entry {
	c := DefaultCatalog()
	out := make([]Entry, n)
	for i := range out {
		a := NewAthlete(c, Identity{ID: fmt.Sprintf("p%d", i+1)})
		out[i] = Entry{Athlete: a, Time: float64(30 + i)}
	}
	return out
}

func ids(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Athlete.ID
	}
	return out
}
