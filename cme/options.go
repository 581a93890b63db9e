// SPDX-License-Identifier: MIT

// Package cme: functional configuration for coefficient derivation.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values only),
//   - gatherOptions, the single place where defaults and setters meet.
package cme

// DefaultMaxLevel is the number of precision levels derived when no
// WithMaxLevel option is given; levels are 0..DefaultMaxLevel-1.
const DefaultMaxLevel = 1000

// DefaultValidate controls whether parameter records are validated before
// derivation.
const DefaultValidate = true

const panicMaxLevelInvalid = "cme: WithMaxLevel: n must be >= 1"

// Option mutates internal options. Applying the same Option twice is harmless.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	maxLevel int  // >= 1; DefaultMaxLevel
	validate bool // DefaultValidate
}

// MaxLevel reports the resolved number of levels.
func (o Options) MaxLevel() int { return o.maxLevel }

// WithMaxLevel sets how many precision levels Derive builds.
// Levels past what the parameter table supports still resolve through the
// fallback record. Panics if n < 1.
// Complexity: O(1).
func WithMaxLevel(n int) Option {
	if n < 1 {
		panic(panicMaxLevelInvalid)
	}

	return func(o *Options) { o.maxLevel = n }
}

// WithoutValidation skips params.ValidateAll in Derive. Use only for tables
// already validated by the caller. Selected records are still shape-checked,
// so a short coefficient slice fails with params.ErrLengthMismatch.
func WithoutValidation() Option {
	return func(o *Options) { o.validate = false }
}

// NewOptions resolves option setters against the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies setters in order on top of defaults (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		maxLevel: DefaultMaxLevel,
		validate: DefaultValidate,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
