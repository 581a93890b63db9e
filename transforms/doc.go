// Package transforms provides closed-form Laplace transform pairs used as
// fixtures for inverse-transform tests, demos and the command-line tool.
//
// Every Pair couples F(s), evaluable at complex s, with the exact f(t).
// The set mirrors the classic CME demo functions: smooth (exponential,
// sine), delayed (heaviside, exp-heaviside) and discontinuous periodic
// (square wave, staircase).
package transforms
