/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package seed

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCategory    = errors.New("seed: invalid category")
	ErrInvalidSex         = errors.New("seed: invalid sex")
	ErrInvalidLanePattern = errors.New("seed: lane pattern must be a permutation of 1..n")
	ErrHeatOverflow       = errors.New("seed: heat has more entrants than lanes")
	ErrTooManyEntrants    = errors.New("seed: event exceeds maximum entrants")
	ErrInvalidLayout      = errors.New("seed: heat block does not fit its band")
)

// TimeFormatError reports a time token that is neither empty, "0", a plain
// seconds value nor a minutes:seconds value.
type TimeFormatError struct {
	Token string
}

func (e *TimeFormatError) Error() string {
	return fmt.Sprintf("seed: malformed time %q", e.Token)
}

// UnknownEventError reports a write to an event the athlete cannot swim.
type UnknownEventError struct {
	AthleteID string
	Event     Event
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("seed: event %v is not valid for athlete %v", e.Event,
		e.AthleteID)
}
