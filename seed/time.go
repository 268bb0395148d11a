/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package seed

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// UnsetTime is the token held for events an athlete has not entered.
const UnsetTime = "0"

// NoTime is the parsed value of an empty or unset token. It sorts after every
// real time.
var NoTime = math.Inf(1)

var (
	minSecRe = regexp.MustCompile(`^(\d*):(\d+\.\d+)$`)
	secRe    = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
)

// ParseTime converts an entry time token into seconds. Accepted shapes are
// "" and "0" (NoTime), "SS" or "SS.ff", and "M:SS.ff" where M may be empty.
func ParseTime(token string) (float64, error) {
	s := strings.TrimSpace(token)
	if isUnset(s) {
		return NoTime, nil
	}

	if strings.Contains(s, ":") {
		m := minSecRe.FindStringSubmatch(s)
		if m == nil {
			return 0, &TimeFormatError{Token: token}
		}
		minutes := 0.0
		if m[1] != "" {
			v, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				return 0, &TimeFormatError{Token: token}
			}
			minutes = v
		}
		seconds, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return 0, &TimeFormatError{Token: token}
		}
		return minutes*60 + seconds, nil
	}

	if !secRe.MatchString(s) {
		return 0, &TimeFormatError{Token: token}
	}
	seconds, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &TimeFormatError{Token: token}
	}

	return seconds, nil
}

// FormatTime renders seconds the way entry sheets print them: "M:SS.ff" once
// a minute has elapsed, "SS.ff" below that, and "NT" for NoTime.
func FormatTime(seconds float64) string {
	if math.IsInf(seconds, 1) || math.IsNaN(seconds) {
		return "NT"
	}
	// work in hundredths so 59.999 rolls over to 1:00.00
	hundredths := int64(math.Round(seconds * 100))
	minutes := hundredths / 6000
	rest := float64(hundredths%6000) / 100
	if minutes > 0 {
		return fmt.Sprintf("%d:%05.2f", minutes, rest)
	}

	return fmt.Sprintf("%.2f", rest)
}

func isUnset(token string) bool {
	return token == "" || token == UnsetTime
}
