/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package seed

import (
	"fmt"
	"sort"
)

// LanePattern lists the lane (1-indexed) given to each seed within a heat:
// element 0 is the lane of the fastest swimmer, element 1 the second
// fastest, and so on. The length of the pattern is the pool's lane count.
type LanePattern []int

var (
	// SixLanePattern is the center-out convention for a six lane pool.
	SixLanePattern = LanePattern{4, 3, 5, 2, 6, 1}
	// EightLanePattern is the center-out convention for an eight lane pool.
	EightLanePattern = LanePattern{4, 5, 3, 6, 2, 7, 1, 8}
)

// Lanes returns the number of lanes the pattern seeds.
func (p LanePattern) Lanes() int {
	return len(p)
}

// Validate checks that p is a permutation of 1..len(p).
func (p LanePattern) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidLanePattern)
	}
	seen := make([]bool, len(p)+1)
	for _, lane := range p {
		if lane < 1 || lane > len(p) || seen[lane] {
			return fmt.Errorf("%w: %v", ErrInvalidLanePattern, []int(p))
		}
		seen[lane] = true
	}
	return nil
}

// Assign places the entrants of one heat into lanes. Entrants may arrive in
// any order; they are seeded by time with ties kept in the given order. The
// result has one slot per lane (index lane-1) and unused lanes are nil.
func (p LanePattern) Assign(entries []Entry) ([]*Entry, error) {
	if len(entries) > len(p) {
		return nil, fmt.Errorf("%w: %d entrants, %d lanes", ErrHeatOverflow,
			len(entries), len(p))
	}
	seeded := append([]Entry(nil), entries...)
	sort.SliceStable(seeded, func(i, j int) bool {
		return seeded[i].Time < seeded[j].Time
	})

	lanes := make([]*Entry, len(p))
	for rank := range seeded {
		lanes[p[rank]-1] = &seeded[rank]
	}

	return lanes, nil
}

// LaneOf returns the lane (1-indexed) holding the athlete with the given id,
// or 0 if the athlete is not in the heat.
func (h Heat) LaneOf(athleteID string) int {
	for i, e := range h.Lanes {
		if e != nil && e.Athlete.ID == athleteID {
			return i + 1
		}
	}
	return 0
}
