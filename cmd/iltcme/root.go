package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/iltcme/cme"
	"github.com/katalvlaran/iltcme/params"
	"github.com/katalvlaran/iltcme/transforms"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

// errNoTimes indicates --times parsed to an empty list.
var errNoTimes = errors.New("iltcme: no evaluation times")

type config struct {
	fn       string
	times    string
	level    int
	params   string
	maxLevel int
	verbose  bool
}

func newRootCmd() *cobra.Command {
	cfg := config{}
	cmd := &cobra.Command{
		Use:           "iltcme",
		Short:         "Invert a reference Laplace transform with the CME method",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cfg, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.fn, "fn", transforms.Exponential.Name,
		"transform: "+strings.Join(transforms.Names(), ", "))
	f.StringVarP(&cfg.times, "times", "t", "1", "comma-separated evaluation times")
	f.IntVar(&cfg.level, "level", 30, "precision level, 0 ≤ level < max-level")
	f.StringVar(&cfg.params, "params", "", "parameter table JSON (default: bundled table)")
	f.IntVar(&cfg.maxLevel, "max-level", cme.DefaultMaxLevel, "number of levels to derive")
	f.BoolVarP(&cfg.verbose, "verbose", "v", false, "debug logging")

	return cmd
}

func run(cfg config, out io.Writer) error {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetLevel(logrus.InfoLevel)
	if cfg.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	pair, err := transforms.Lookup(cfg.fn)
	if err != nil {
		return err
	}
	ts, err := parseTimes(cfg.times)
	if err != nil {
		return err
	}
	tb, err := buildTable(cfg.params, cfg.maxLevel)
	if err != nil {
		return err
	}
	n, err := tb.Evaluations(cfg.level)
	if err != nil {
		return err
	}
	logrus.Debugf("%s: F(s) = %s, level %d, %d evaluations per point", pair.Name, pair.Formula, cfg.level, n)

	approx, err := tb.InvertMany(cme.Func(pair.Laplace), ts, cfg.level)
	if err != nil {
		return err
	}

	errs := make([]float64, len(ts))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "t\tapprox\texact\tabs err")
	for i, t := range ts {
		exact := pair.Time(t)
		errs[i] = math.Abs(approx[i] - exact)
		fmt.Fprintf(w, "%g\t%.8f\t%.8f\t%.3e\n", t, approx[i], exact, errs[i])
	}
	if err := w.Flush(); err != nil {
		return err
	}
	logrus.Infof("%s at level %d: max abs err %.3e over %d points", pair.Name, cfg.level, floats.Max(errs), len(ts))

	return nil
}

// buildTable returns the default table, or derives one when a custom
// parameter file or level count is requested.
func buildTable(path string, maxLevel int) (*cme.Table, error) {
	if maxLevel < 1 {
		return nil, fmt.Errorf("max-level=%d: %w", maxLevel, cme.ErrLevelOutOfRange)
	}
	if path == "" && maxLevel == cme.DefaultMaxLevel {
		return cme.Default()
	}

	var (
		ps  []params.Param
		err error
	)
	if path == "" {
		ps, err = params.Default()
	} else {
		ps, err = params.LoadFile(path)
	}
	if err != nil {
		return nil, err
	}

	return cme.Derive(ps, cme.WithMaxLevel(maxLevel))
}

// parseTimes splits a comma list such as "0.5, 1,2" into float64 values.
func parseTimes(s string) ([]float64, error) {
	var ts []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		t, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("time %q: %w", field, err)
		}
		ts = append(ts, t)
	}
	if len(ts) == 0 {
		return nil, errNoTimes
	}

	return ts, nil
}
