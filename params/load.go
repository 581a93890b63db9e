// SPDX-License-Identifier: MIT
// Package: iltcme/params
//
// load.go: JSON ingestion and encoding of parameter tables.
//
// Format: a JSON array of records {"n","a","b","c","omega","mu1","cv2"},
// the layout of the published CME parameter file. Records keep file order;
// the first record is the fallback used by coefficient derivation.

package params

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Parse decodes and validates a JSON parameter table.
// Decoding failures wrap ErrDecode; invariant violations are reported by
// ValidateAll with the offending record index.
func Parse(data []byte) ([]Param, error) {
	var ps []Param
	if err := json.Unmarshal(data, &ps); err != nil {
		return nil, fmt.Errorf("Parse: %v: %w", err, ErrDecode)
	}
	if err := ValidateAll(ps); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	logrus.Debugf("params: decoded %d CME parameter sets (max order %d)", len(ps), MaxOrder(ps))

	return ps, nil
}

// Load reads a whole JSON parameter table from r. See Parse.
func Load(r io.Reader) ([]Param, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	return Parse(data)
}

// LoadFile reads a JSON parameter table from path. See Parse.
func LoadFile(path string) ([]Param, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	ps, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("LoadFile %s: %w", path, err)
	}
	minCv2 := ps[0].Cv2
	for i := range ps {
		if ps[i].Cv2 < minCv2 {
			minCv2 = ps[i].Cv2
		}
	}
	logrus.Infof("Loaded CME parameter table: %s, %d sets, max order %d, min cv2 %.3g",
		path, len(ps), MaxOrder(ps), minCv2)

	return ps, nil
}

// Encode writes ps as a JSON array with one record per line.
func Encode(w io.Writer, ps []Param) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("[\n"); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	for i := range ps {
		line, err := json.Marshal(ps[i])
		if err != nil {
			return fmt.Errorf("Encode: record %d: %w", i, err)
		}
		if i < len(ps)-1 {
			line = append(line, ',')
		}
		if _, err := bw.Write(append(line, '\n')); err != nil {
			return fmt.Errorf("Encode: record %d: %w", i, err)
		}
	}
	if _, err := bw.WriteString("]\n"); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return nil
}
