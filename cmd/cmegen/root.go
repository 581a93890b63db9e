package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/iltcme/params"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// families maps --family values to generators.
var families = map[string]params.Generator{
	"optimal":    params.Optimal,
	"sine-power": params.SinePower,
}

type genConfig struct {
	family   string
	maxOrder int
	dense    bool
	check    bool
}

func newRootCmd() *cobra.Command {
	var (
		cfg    genConfig
		output string
	)
	cmd := &cobra.Command{
		Use:           "cmegen",
		Short:         "Generate a CME parameter table",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ps, err := generate(cfg)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				return params.Encode(cmd.OutOrStdout(), ps)
			}

			return writeFile(output, ps)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.family, "family", "optimal", "kernel family: optimal or sine-power")
	f.IntVar(&cfg.maxOrder, "max-order", 100, "highest order n to generate")
	f.BoolVar(&cfg.dense, "dense", false, "generate every order 1..n instead of the bundled layout")
	f.BoolVar(&cfg.check, "check", true, "verify every record's moments before writing")
	f.StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// generate builds the table and optionally re-checks every record's
// declared moments against the closed form.
func generate(cfg genConfig) ([]params.Param, error) {
	gen, ok := families[cfg.family]
	if !ok {
		return nil, fmt.Errorf("unknown family %q (want optimal or sine-power)", cfg.family)
	}
	if cfg.maxOrder < 1 {
		return nil, fmt.Errorf("max-order %d: %w", cfg.maxOrder, params.ErrBadOrder)
	}
	orders := params.Orders(cfg.maxOrder)
	if cfg.dense {
		orders = make([]int, cfg.maxOrder)
		for i := range orders {
			orders[i] = i + 1
		}
	}

	ps, err := params.Generate(gen, orders)
	if err != nil {
		return nil, err
	}
	if cfg.check {
		for i := range ps {
			if err := params.CheckMoments(ps[i], params.DefaultMomentTolerance); err != nil {
				return nil, fmt.Errorf("order %d: %w", ps[i].N, err)
			}
		}
	}
	logrus.Infof("Generated %d %s parameter sets, cv2 %.3g .. %.3g",
		len(ps), cfg.family, ps[0].Cv2, ps[len(ps)-1].Cv2)

	return ps, nil
}

func writeFile(path string, ps []params.Param) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return params.Encode(f, ps)
}
