/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package seed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// BuildHeatSheetOutput formats a seeded event into aligned, printable text.
// Heats are printed fastest last, in the order they are swum.
func BuildHeatSheetOutput(es *EventSheet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Event %v (%v)\n", es.Event, es.Category))
	if len(es.Heats) == 0 {
		sb.WriteString("No entries\n\n")
		return sb.String()
	}
	sb.WriteString(fmt.Sprintf("%d entrants, %d heats\n\n", es.Entrants(),
		len(es.Heats)))

	type row struct{ lane, name, team, grade, seed string }
	for _, h := range es.Heats {
		var rows []row
		for i, e := range h.Lanes {
			r := row{lane: strconv.Itoa(i + 1)}
			if e != nil {
				r.name = e.Athlete.Name
				r.team = e.Athlete.Team
				r.grade = strconv.Itoa(e.Athlete.Grade)
				r.seed = FormatTime(e.Time)
			}
			rows = append(rows, r)
		}

		// Compute column widths in terminal cells; CJK names are double width
		maxL, maxN, maxT := len("Lane"), len("Name"), len("Team")
		maxG, maxS := len("Grade"), len("Seed")
		for _, r := range rows {
			if l := runewidth.StringWidth(r.lane); l > maxL {
				maxL = l
			}
			if l := runewidth.StringWidth(r.name); l > maxN {
				maxN = l
			}
			if l := runewidth.StringWidth(r.team); l > maxT {
				maxT = l
			}
			if l := runewidth.StringWidth(r.grade); l > maxG {
				maxG = l
			}
			if l := runewidth.StringWidth(r.seed); l > maxS {
				maxS = l
			}
		}

		sb.WriteString(fmt.Sprintf("Heat %d of %d\n", h.Index+1, len(es.Heats)))
		widths := []int{maxL, maxN, maxT, maxG, maxS}
		sb.WriteString(tableLine(widths, "Lane", "Name", "Team", "Grade", "Seed"))
		for _, r := range rows {
			sb.WriteString(tableLine(widths, r.lane, r.name, r.team, r.grade,
				r.seed))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// tableLine pads each field to its column width and joins them with two
// spaces. %-*s pads by rune count, which misaligns double width text.
func tableLine(widths []int, fields ...string) string {
	padded := make([]string, len(fields))
	for i, f := range fields {
		padded[i] = runewidth.FillRight(f, widths[i])
	}
	return strings.TrimRight(strings.Join(padded, "  "), " ") + "\n"
}

// BuildRankingOutput formats a ranking as a numbered list.
func BuildRankingOutput(ev Event, cat Category, ranking []Entry) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Event %v (%v)\n", ev, cat))
	if len(ranking) == 0 {
		sb.WriteString("No entries\n")
		return sb.String()
	}
	for i, e := range ranking {
		sb.WriteString(fmt.Sprintf("%3d. %s (%s) %s\n", i+1, e.Athlete.Name,
			e.Athlete.Team, FormatTime(e.Time)))
	}

	return sb.String()
}
