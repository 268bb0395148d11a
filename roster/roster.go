/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mikeb26/swimseed/seed"
)

// IdentityColumns is the number of leading columns of a roster row: id,
// name, phonetic name, team, grade and sex.
const IdentityColumns = 6

var (
	ErrMissingField = errors.New("roster: missing required field")
	ErrDuplicateID  = errors.New("roster: duplicate athlete id")
)

// RowError reports a roster row that could not be turned into an athlete.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("roster: line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Reader turns roster rows into athletes. Time columns are positional and
// follow the identity columns in the order of the reader's event labels.
type Reader struct {
	catalog *seed.Catalog
	events  []seed.Event
}

// NewReader returns a Reader for the given time column labels; nil labels
// selects DefaultEventLabels.
func NewReader(catalog *seed.Catalog, labels []string) (*Reader, error) {
	if labels == nil {
		labels = DefaultEventLabels
	}
	r := &Reader{catalog: catalog}
	for _, l := range labels {
		ev, err := ParseEventLabel(l)
		if err != nil {
			return nil, err
		}
		r.events = append(r.events, ev)
	}

	return r, nil
}

// Events returns the event of each time column in order.
func (r *Reader) Events() []seed.Event {
	return append([]seed.Event(nil), r.events...)
}

// ParseRow builds an athlete from one roster row. Blank time cells leave the
// event unset; every other time is validated here so a bad row is reported
// with its line number rather than when the event is seeded.
func (r *Reader) ParseRow(line int, row []string) (*seed.Athlete, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	id := seed.Identity{
		ID:           cell(0),
		Name:         cell(1),
		PhoneticName: cell(2),
		Team:         cell(3),
	}
	if id.ID == "" {
		return nil, &RowError{Line: line, Err: fmt.Errorf("%w: id",
			ErrMissingField)}
	}
	if id.Name == "" {
		return nil, &RowError{Line: line, Err: fmt.Errorf("%w: name",
			ErrMissingField)}
	}
	if g := cell(4); g != "" {
		grade, err := strconv.Atoi(g)
		if err != nil {
			return nil, &RowError{Line: line,
				Err: fmt.Errorf("bad grade %q", g)}
		}
		id.Grade = grade
	}
	if cell(5) == "" {
		return nil, &RowError{Line: line, Err: fmt.Errorf("%w: sex",
			ErrMissingField)}
	}
	sex, err := ParseSex(cell(5))
	if err != nil {
		return nil, &RowError{Line: line, Err: err}
	}
	id.Sex = sex

	athlete := seed.NewAthlete(r.catalog, id)
	for i, ev := range r.events {
		token := cell(IdentityColumns + i)
		if token == "" {
			continue
		}
		if _, err := seed.ParseTime(token); err != nil {
			return nil, &RowError{Line: line, Err: err}
		}
		if err := athlete.SetTime(ev, token); err != nil {
			return nil, &RowError{Line: line, Err: err}
		}
	}

	return athlete, nil
}

// ReadCSV reads a roster whose first record is a header row.
func (r *Reader) ReadCSV(rd io.Reader) ([]*seed.Athlete, error) {
	cr := csv.NewReader(rd)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows [][]string
	var lines []int
	header := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("roster.csv: %w", err)
		}
		if header {
			header = false
			continue
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, rec)
		lines = append(lines, line)
	}

	return r.build(rows, lines)
}

// ReadHTML reads the first table of an HTML entries page. Rows without data
// cells (header rows) are skipped.
func (r *Reader) ReadHTML(rd io.Reader) ([]*seed.Athlete, error) {
	doc, err := goquery.NewDocumentFromReader(rd)
	if err != nil {
		return nil, fmt.Errorf("roster.html: %w", err)
	}
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("roster.html: no table found")
	}

	var rows [][]string
	var lines []int
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		tds := tr.Find("td")
		if tds.Length() == 0 {
			return
		}
		var rec []string
		tds.Each(func(_ int, td *goquery.Selection) {
			rec = append(rec, strings.TrimSpace(td.Text()))
		})
		rows = append(rows, rec)
		lines = append(lines, i+1)
	})

	return r.build(rows, lines)
}

func (r *Reader) build(rows [][]string, lines []int) ([]*seed.Athlete,
	error) {

	seen := make(map[string]int)
	var athletes []*seed.Athlete
	for i, row := range rows {
		if blankRow(row) {
			continue
		}
		a, err := r.ParseRow(lines[i], row)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[a.ID]; dup {
			return nil, &RowError{Line: lines[i],
				Err: fmt.Errorf("%w: %v (first seen on line %d)", ErrDuplicateID,
					a.ID, prev)}
		}
		seen[a.ID] = lines[i]
		athletes = append(athletes, a)
	}

	return athletes, nil
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
