// Package grid provides a dense two-dimensional container together with the
// integer positions and compass headings used to address it.
//
// A [Grid] stores rows of equal length and carries no domain meaning of its
// own; packages such as maze and routegraph decide what a cell holds.
//
//	g, err := grid.FromCells([][]rune{
//	    []rune("#.#"),
//	    []rune("..."),
//	})
//	v, ok := g.AtOK(grid.New(1, 0)) // '.', true
package grid

import (
	"errors"
	"fmt"
	"iter"
)

// ErrRaggedRow is returned when a row does not match the grid width.
var ErrRaggedRow = errors.New("grid: row length differs from grid width")

// Grid is a rectangular collection of cells indexed by [XY].
//
// The zero value is an empty grid ready for [Grid.Push].
type Grid[T any] struct {
	cells  [][]T
	width  int
	height int
}

// NewGrid returns an empty grid.
func NewGrid[T any]() *Grid[T] {
	return &Grid[T]{}
}

// Make returns a width×height grid filled with zero values.
func Make[T any](width, height int) *Grid[T] {
	cells := make([][]T, height)
	for i := range cells {
		cells[i] = make([]T, width)
	}
	return &Grid[T]{cells: cells, width: width, height: height}
}

// FromCells builds a grid from rows. Every row must have the length of the
// first one.
func FromCells[T any](rows [][]T) (*Grid[T], error) {
	g := &Grid[T]{}
	for _, row := range rows {
		if err := g.Push(row); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Push appends a row. The first row fixes the width.
func (g *Grid[T]) Push(row []T) error {
	if g.height == 0 {
		g.width = len(row)
	} else if len(row) != g.width {
		return fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRow, g.height, len(row), g.width)
	}
	g.cells = append(g.cells, row)
	g.height++
	return nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// InBounds reports whether p addresses a cell of g.
func (g *Grid[T]) InBounds(p XY) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < int64(g.width) && p.Y < int64(g.height)
}

// At returns the cell at p. It panics if p is out of bounds.
func (g *Grid[T]) At(p XY) T {
	return g.cells[p.Y][p.X]
}

// AtOK returns the cell at p and whether p was in bounds.
func (g *Grid[T]) AtOK(p XY) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g.cells[p.Y][p.X], true
}

// Set stores v at p. It panics if p is out of bounds.
func (g *Grid[T]) Set(p XY, v T) {
	g.cells[p.Y][p.X] = v
}

// All yields every position and cell in row-major order.
func (g *Grid[T]) All() iter.Seq2[XY, T] {
	return func(yield func(XY, T) bool) {
		for row := 0; row < g.height; row++ {
			for col := 0; col < g.width; col++ {
				if !yield(FromRC(row, col), g.cells[row][col]) {
					return
				}
			}
		}
	}
}
