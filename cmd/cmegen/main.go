// Command cmegen generates a CME parameter table and writes it as JSON, one
// record per line.
//
// Usage:
//
//	cmegen --max-order 200 -o table.json
//	cmegen --family sine-power --dense --max-order 50
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("cmegen failed")
		os.Exit(1)
	}
}
