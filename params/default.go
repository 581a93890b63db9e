// SPDX-License-Identifier: MIT

package params

import (
	_ "embed"
	"fmt"
	"sync"
)

// defaultJSON is the bundled table: the minimum-cv2 family (see Optimal) over
// Orders(1000). Orders up to a few hundred can be regenerated with cmd/cmegen;
// the largest ones were solved in extended precision.
//
//go:embed data/iltcme.json
var defaultJSON []byte

var (
	defaultOnce  sync.Once
	defaultTable []Param
	defaultErr   error
)

// Default returns a deep copy of the bundled parameter table.
// The embedded file is decoded at most once per process; concurrent first
// callers all observe the same fully decoded table.
func Default() ([]Param, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = Parse(defaultJSON)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("Default: embedded table: %w", defaultErr)
		}
	})
	if defaultErr != nil {
		return nil, defaultErr
	}

	return CloneAll(defaultTable), nil
}
