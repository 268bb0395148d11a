/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package seed

import (
	"fmt"
)

// CellFields is the number of consecutive columns a lane fills: name,
// phonetic name, team and grade.
const CellFields = 4

// LayoutBlock is the top-left offset of one heat on the printed sheet.
type LayoutBlock struct {
	Row int
	Col int
}

// Cell is a 1-indexed spreadsheet coordinate.
type Cell struct {
	Row int
	Col int
}

// Layout describes how heat blocks tile a multi-column sheet. Blocks fill a
// column band of LaneCount heats top to bottom before wrapping to the next
// band to the right.
type Layout struct {
	LaneCount   int
	BandHeight  int
	BaseWidth   int
	HeaderRows  int
	FirstColumn int
	// Spacing widens a column band by distance; longer races print more
	// split columns. Distances missing from the table get no extra width.
	Spacing map[int]int
}

func DefaultLayout() Layout {
	return Layout{
		LaneCount:   DefaultLaneCount,
		BandHeight:  10,
		BaseWidth:   7,
		HeaderRows:  4,
		FirstColumn: 2,
		Spacing: map[int]int{
			50:  0,
			100: 1,
			200: 3,
			400: 7,
		},
	}
}

// Validate checks that a heat block fits inside its band: the header rows
// plus one row per lane within BandHeight, and the lane fields within
// BaseWidth. Otherwise one heat's cells would overwrite its neighbour's.
func (l Layout) Validate() error {
	if l.LaneCount <= 0 {
		return fmt.Errorf("%w: lane count %d must be positive", ErrInvalidLayout,
			l.LaneCount)
	}
	if l.HeaderRows < 0 || l.FirstColumn < 0 {
		return fmt.Errorf("%w: negative offset", ErrInvalidLayout)
	}
	if rows := l.HeaderRows + l.LaneCount; l.BandHeight < rows {
		return fmt.Errorf("%w: band height %d < %d header rows + %d lanes",
			ErrInvalidLayout, l.BandHeight, l.HeaderRows, l.LaneCount)
	}
	if cols := l.FirstColumn + CellFields; l.BaseWidth < cols {
		return fmt.Errorf("%w: base width %d < first column %d + %d fields",
			ErrInvalidLayout, l.BaseWidth, l.FirstColumn, CellFields)
	}
	for d, s := range l.Spacing {
		if s < 0 {
			return fmt.Errorf("%w: spacing for %d is %d", ErrInvalidLayout, d, s)
		}
	}
	return nil
}

// BandWidth returns the width of one column band for distance.
func (l Layout) BandWidth(distance int) int {
	return l.BaseWidth + l.Spacing[distance]
}

// Place maps each heat index to its block. Heat i sits in row band
// i mod LaneCount and column band i div LaneCount, so the slowest heats head
// every column band.
func (l Layout) Place(heats []Heat, distance int) map[int]LayoutBlock {
	blocks := make(map[int]LayoutBlock, len(heats))
	perBand := l.LaneCount
	if perBand <= 0 {
		perBand = DefaultLaneCount
	}
	for _, h := range heats {
		blocks[h.Index] = LayoutBlock{
			Row: (h.Index % perBand) * l.BandHeight,
			Col: (h.Index / perBand) * l.BandWidth(distance),
		}
	}

	return blocks
}

// Cell returns the sheet cell of the first field of a lane (1-indexed)
// within block.
func (l Layout) Cell(b LayoutBlock, lane int) Cell {
	return Cell{
		Row: b.Row + (lane - 1) + l.HeaderRows,
		Col: b.Col + l.FirstColumn,
	}
}
