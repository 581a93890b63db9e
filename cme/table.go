// SPDX-License-Identifier: MIT

package cme

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/iltcme/params"
)

// Table is the precision-indexed lookup table produced by Derive.
// It is never mutated after construction and is safe for concurrent use
// without locking.
type Table struct {
	rows   []Row // rows[level]
	source []int // source[level] = index of the parameter set in the input table
}

// MaxLevel returns the number of levels; valid levels are 0..MaxLevel()-1.
func (tb *Table) MaxLevel() int {
	if tb == nil {
		return 0
	}

	return len(tb.rows)
}

// Row returns a copy of the row for level.
// Errors: ErrNilTable, ErrLevelOutOfRange.
func (tb *Table) Row(level int) (Row, error) {
	r, err := tb.row("Row", level)
	if err != nil {
		return Row{}, err
	}

	return r.clone(), nil
}

// Source returns the index, in the parameter table Derive was given, of the
// parameter set selected for level.
func (tb *Table) Source(level int) (int, error) {
	if _, err := tb.row("Source", level); err != nil {
		return -1, err
	}

	return tb.source[level], nil
}

// Evaluations returns how many times an inversion at level calls F.
func (tb *Table) Evaluations(level int) (int, error) {
	r, err := tb.row("Evaluations", level)
	if err != nil {
		return 0, err
	}

	return r.Evaluations(), nil
}

// row bounds-checks level and returns the shared (non-copied) row.
func (tb *Table) row(op string, level int) (*Row, error) {
	if tb == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilTable)
	}
	if level < 0 || level >= len(tb.rows) {
		return nil, cmeErrorf(op, ErrLevelOutOfRange, "level %d, max %d", level, len(tb.rows))
	}

	return &tb.rows[level], nil
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// Default returns the process-wide table derived from params.Default() with
// DefaultMaxLevel levels. It is built at most once; concurrent first callers
// all observe the same fully built table.
func Default() (*Table, error) {
	defaultOnce.Do(func() {
		ps, err := params.Default()
		if err != nil {
			defaultErr = fmt.Errorf("Default: %w", err)
			return
		}
		defaultTable, defaultErr = Derive(ps)
	})

	return defaultTable, defaultErr
}

// MaxLevel returns Default().MaxLevel(), or 0 if the default table cannot
// be built.
func MaxLevel() int {
	tb, err := Default()
	if err != nil {
		return 0
	}

	return tb.MaxLevel()
}
