/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package roster

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mikeb26/swimseed/seed"
)

// DefaultEventLabels names the time columns of an entry roster, in column
// order, starting right after the identity columns.
var DefaultEventLabels = []string{
	"100Ba", "100Fly", "200Fr", "100Br", "50Fr", "400Fr", "50Ba", "200IM",
	"200Ba", "50Fly", "200Br", "200Fly", "100Fr", "50Br", "400IM",
}

var labelRe = regexp.MustCompile(`^(\d+)\s*([A-Za-z]+)$`)

var strokeNames = map[string]seed.Stroke{
	"im":  seed.StrokeIM,
	"fly": seed.StrokeFly,
	"ba":  seed.StrokeBack,
	"br":  seed.StrokeBreast,
	"fr":  seed.StrokeFree,
}

// ParseEventLabel splits a label such as "200IM" or "50Fr" into its event.
func ParseEventLabel(label string) (seed.Event, error) {
	m := labelRe.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return seed.Event{}, fmt.Errorf("roster: cannot parse event label %q",
			label)
	}
	dist, err := strconv.Atoi(m[1])
	if err != nil || dist <= 0 {
		return seed.Event{}, fmt.Errorf("roster: bad distance in event label %q",
			label)
	}
	stroke, ok := strokeNames[strings.ToLower(m[2])]
	if !ok {
		return seed.Event{}, fmt.Errorf("roster: unknown stroke %q in event label %q",
			m[2], label)
	}

	return seed.Event{Stroke: stroke, Distance: dist}, nil
}

// FormatEventLabel is the inverse of ParseEventLabel, e.g. "200IM", "50Fr".
func FormatEventLabel(ev seed.Event) string {
	var name string
	switch ev.Stroke {
	case seed.StrokeIM:
		name = "IM"
	case seed.StrokeFly:
		name = "Fly"
	default:
		s := string(ev.Stroke)
		if s != "" {
			name = strings.ToUpper(s[:1]) + s[1:]
		}
	}
	return fmt.Sprintf("%d%s", ev.Distance, name)
}

// ParseSex accepts the spellings found on entry forms.
func ParseSex(s string) (seed.Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m", "男", "男子":
		return seed.SexMale, nil
	case "female", "f", "女", "女子":
		return seed.SexFemale, nil
	}
	return seed.SexUnknown, fmt.Errorf("%w: %q", seed.ErrInvalidSex, s)
}
