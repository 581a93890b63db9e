// SPDX-License-Identifier: MIT

package cme

import (
	"fmt"

	"github.com/katalvlaran/iltcme/params"
)

// Steepest selects the parameter set used for precision level `level`.
//
// Algorithm:
//  1. Start from ps[0]; it is always eligible and acts as the fallback.
//  2. For i = 1..len(ps)-1: take ps[i] when ps[i].Cv2 < cand.Cv2 AND ps[i].N < level.
//  3. Return the final candidate and its index in ps.
//
// Both comparisons are strict. Consequently levels 0 and 1 can only ever use
// the fallback, and a level beyond every order in the table still resolves.
//
// Errors:
//   - ErrEmptyParams if ps is empty.
//
// Complexity: O(len(ps)).
func Steepest(ps []params.Param, level int) (params.Param, int, error) {
	if len(ps) == 0 {
		return params.Param{}, -1, ErrEmptyParams
	}
	best := 0
	for i := 1; i < len(ps); i++ {
		if ps[i].Cv2 < ps[best].Cv2 && ps[i].N < level {
			best = i
		}
	}

	return ps[best], best, nil
}

// Derive builds the lookup table: one Row per level 0..maxLevel-1, each
// from Steepest(ps, level).
//
// Stage 1 (Validate): reject an empty table; unless WithoutValidation is set,
// run params.ValidateAll so a malformed record is reported with its index.
// Stage 2 (Select & convert): for every level pick the steepest eligible set
// and convert it with NewRow. Levels sharing a parameter set share one
// converted row internally.
// Stage 3 (Finalize): return the immutable *Table.
//
// Errors:
//   - ErrEmptyParams (fatal: no fallback).
//   - params.ErrLengthMismatch / ErrNonFinite / ErrBadScale / ErrBadOrder,
//     wrapped with the record index. With WithoutValidation only the shape
//     errors (ErrLengthMismatch, ErrBadOrder) of selected records remain.
//
// Complexity: O(maxLevel·len(ps) + Σ N) time.
func Derive(ps []params.Param, opts ...Option) (*Table, error) {
	o := gatherOptions(opts...)
	if len(ps) == 0 {
		return nil, fmt.Errorf("Derive: %w", ErrEmptyParams)
	}
	if o.validate {
		if err := params.ValidateAll(ps); err != nil {
			return nil, fmt.Errorf("Derive: %w", err)
		}
	}

	rows := make([]Row, o.maxLevel)
	source := make([]int, o.maxLevel)
	converted := make(map[int]Row)
	for level := 0; level < o.maxLevel; level++ {
		p, idx, err := Steepest(ps, level)
		if err != nil {
			return nil, fmt.Errorf("Derive: level %d: %w", level, err)
		}
		row, ok := converted[idx]
		if !ok {
			if row, err = NewRow(p); err != nil {
				return nil, fmt.Errorf("Derive: level %d: record %d: %w", level, idx, err)
			}
			converted[idx] = row
		}
		rows[level] = row
		source[level] = idx
	}

	return &Table{rows: rows, source: source}, nil
}
