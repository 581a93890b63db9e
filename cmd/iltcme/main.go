// Command iltcme inverts a reference Laplace transform at a list of times
// and compares the result with the closed-form time function.
//
// Usage:
//
//	iltcme --fn sine -t 0.5,1,2 --level 30 -v
//	iltcme --fn staircase -t 2.5 --params ./table.json --max-level 200 --level 150
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("iltcme failed")
		os.Exit(1)
	}
}
