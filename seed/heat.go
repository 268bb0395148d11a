/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package seed

import (
	"fmt"
)

// DefaultLaneCount is the number of lanes in a standard pool.
const DefaultLaneCount = 6

// Heat is one race of an event. Index 0 is the slowest heat; the highest
// index holds the fastest entrants. Entries are fastest first. Lanes is
// filled by LanePattern.Assign and holds one slot per lane, nil when empty.
type Heat struct {
	Index   int
	Entries []Entry
	Lanes   []*Entry
}

// Partition splits a fastest-first ranking into heats of laneCount. When the
// field does not divide evenly the remainder swims in heat 0 with the slowest
// entrants, so every other heat is full.
func Partition(ranking []Entry, laneCount int) ([]Heat, error) {
	if laneCount <= 0 {
		return nil, fmt.Errorf("seed.partition: lane count %d must be positive",
			laneCount)
	}
	n := len(ranking)
	if n == 0 {
		return []Heat{}, nil
	}

	numHeats := (n + laneCount - 1) / laneCount
	heats := make([]Heat, numHeats)
	for i := range heats {
		// counting from the fastest heat, heat i holds the fastest-th group
		fastest := numHeats - 1 - i
		start := fastest * laneCount
		end := start + laneCount
		if end > n {
			end = n
		}
		heats[i] = Heat{
			Index:   i,
			Entries: append([]Entry(nil), ranking[start:end]...),
		}
	}

	return heats, nil
}
