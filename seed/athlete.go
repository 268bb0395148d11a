/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package seed

import (
	"sort"
	"strings"
)

// Identity holds the fixed fields of a roster row.
type Identity struct {
	ID           string
	Name         string
	PhoneticName string
	Team         string
	Grade        int
	Sex          Sex
}

// Athlete is one roster entry and its entry times. The set of events is fixed
// at construction from the catalog entries for the athlete's own sex; every
// event starts out as UnsetTime. An athlete of SexUnknown has no events.
type Athlete struct {
	Identity

	times map[Event]string
}

func NewAthlete(catalog *Catalog, id Identity) *Athlete {
	a := &Athlete{
		Identity: id,
		times:    make(map[Event]string),
	}
	cat, ok := CategoryFor(id.Sex)
	if !ok {
		return a
	}
	for _, ev := range catalog.Events(cat) {
		a.times[ev] = UnsetTime
	}

	return a
}

// SetTime records the entry time token for ev. Tokens are stored verbatim and
// validated when the event is ranked.
func (a *Athlete) SetTime(ev Event, token string) error {
	if _, ok := a.times[ev]; !ok {
		return &UnknownEventError{AthleteID: a.ID, Event: ev}
	}
	a.times[ev] = token

	return nil
}

// Time returns the token held for ev and whether ev is one of the athlete's
// events at all.
func (a *Athlete) Time(ev Event) (string, bool) {
	t, ok := a.times[ev]
	return t, ok
}

// Entered reports whether the athlete holds a real entry time for ev.
func (a *Athlete) Entered(ev Event) bool {
	t, ok := a.times[ev]
	return ok && !isUnset(strings.TrimSpace(t))
}

// Events returns the athlete's event keys sorted by stroke then distance.
func (a *Athlete) Events() []Event {
	out := make([]Event, 0, len(a.times))
	for ev := range a.times {
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Stroke != out[j].Stroke {
			return strokeLess(out[i].Stroke, out[j].Stroke)
		}
		return out[i].Distance < out[j].Distance
	})

	return out
}
