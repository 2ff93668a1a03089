package main

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gofit/pkg/analysis"
	"github.com/philipparndt/gofit/pkg/bestfit"
	"github.com/philipparndt/gofit/pkg/geometry"
	"github.com/philipparndt/gofit/pkg/pointcloud"
	"github.com/spf13/cobra"
)

type circleFlags struct {
	searchFlags
	exact     bool
	centerX   float64
	radius    float64
	radiusMin float64
	radiusMax float64
}

func newCircleCmd(a *app) *cobra.Command {
	f := &circleFlags{}
	cmd := &cobra.Command{
		Use:   "circle <file>",
		Short: "Fit a circle to the x/y coordinates of the points",
		Long: `Fit a circle to the x/y coordinates of the points in file.

  --exact                          circle through exactly three points
  --center-x X --radius R          search the center y
  --center-x X --radius-min A --radius-max B
                                   search radius and center y`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFit(cmd, args[0], f.watch, func() error {
				return a.fitCircle(cmd, args[0], f)
			})
		},
	}

	f.register(cmd)
	cmd.Flags().BoolVar(&f.exact, "exact", false, "Solve the circle through exactly three points")
	cmd.Flags().Float64Var(&f.centerX, "center-x", 0, "Known center x")
	cmd.Flags().Float64Var(&f.radius, "radius", 0, "Known radius")
	cmd.Flags().Float64Var(&f.radiusMin, "radius-min", 0, "Smallest radius to search")
	cmd.Flags().Float64Var(&f.radiusMax, "radius-max", 0, "Largest radius to search")
	cmd.MarkFlagsRequiredTogether("radius-min", "radius-max")
	cmd.MarkFlagsMutuallyExclusive("exact", "radius", "radius-min")
	cmd.MarkFlagsMutuallyExclusive("exact", "center-x")
	return cmd
}

func (a *app) fitCircle(cmd *cobra.Command, path string, f *circleFlags) error {
	cloud, err := pointcloud.Load(path)
	if err != nil {
		return err
	}
	points := pointcloud.Points2D(cloud)

	var c geometry.Circle
	flags := cmd.Flags()
	switch {
	case f.exact:
		c, err = geometry.CircleFrom3Points(points)

	case flags.Changed("radius") || flags.Changed("radius-min"):
		if !flags.Changed("center-x") {
			return errors.New("--center-x is required for a search")
		}
		opts, optErr := f.options(cmd, a)
		if optErr != nil {
			return optErr
		}
		if flags.Changed("radius") {
			c, err = bestfit.Circle(points, f.centerX, f.radius, opts...)
		} else {
			c, err = bestfit.CircleRadius(points, f.centerX, [2]float64{f.radiusMin, f.radiusMax}, opts...)
		}

	default:
		return errors.New("choose --exact, --radius or --radius-min/--radius-max")
	}
	if err != nil {
		return err
	}

	residuals, err := analysis.CircleResiduals(c, points)
	if err != nil {
		return err
	}
	a.logger.Debug("circle fitted", "file", path, "circle", c.String(), "rms", residuals.RMS)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Circle")
	fmt.Fprintln(out, "======")
	fmt.Fprintf(out, "Center:       %s\n", analysis.FormatVector2(c.Center))
	fmt.Fprintf(out, "Radius:       %s\n", analysis.FormatMeasurement(c.Radius, ""))
	fmt.Fprintln(out)
	fmt.Fprint(out, residuals.String())
	return checkResiduals(cmd, residuals, f.maxResidual)
}
