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

type sphereFlags struct {
	searchFlags
	exact     bool
	centerX   float64
	centerZ   float64
	radius    float64
	radiusMin float64
	radiusMax float64
}

func newSphereCmd(a *app) *cobra.Command {
	f := &sphereFlags{}
	cmd := &cobra.Command{
		Use:   "sphere <file>",
		Short: "Fit a sphere to the points",
		Long: `Fit a sphere to the points in file.

  --exact                                     sphere through exactly four points
  --center-x X --center-z Z --radius R        search the center y
  --center-x X --center-z Z --radius-min A --radius-max B
                                              search radius and center y`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFit(cmd, args[0], f.watch, func() error {
				return a.fitSphere(cmd, args[0], f)
			})
		},
	}

	f.register(cmd)
	cmd.Flags().BoolVar(&f.exact, "exact", false, "Solve the sphere through exactly four points")
	cmd.Flags().Float64Var(&f.centerX, "center-x", 0, "Known center x")
	cmd.Flags().Float64Var(&f.centerZ, "center-z", 0, "Known center z")
	cmd.Flags().Float64Var(&f.radius, "radius", 0, "Known radius")
	cmd.Flags().Float64Var(&f.radiusMin, "radius-min", 0, "Smallest radius to search")
	cmd.Flags().Float64Var(&f.radiusMax, "radius-max", 0, "Largest radius to search")
	cmd.MarkFlagsRequiredTogether("center-x", "center-z")
	cmd.MarkFlagsRequiredTogether("radius-min", "radius-max")
	cmd.MarkFlagsMutuallyExclusive("exact", "radius", "radius-min")
	cmd.MarkFlagsMutuallyExclusive("exact", "center-x")
	return cmd
}

func (a *app) fitSphere(cmd *cobra.Command, path string, f *sphereFlags) error {
	points, err := pointcloud.Load(path)
	if err != nil {
		return err
	}

	var s geometry.Sphere
	flags := cmd.Flags()
	switch {
	case f.exact:
		s, err = geometry.SphereFrom4Points(points)

	case flags.Changed("radius") || flags.Changed("radius-min"):
		if !flags.Changed("center-x") {
			return errors.New("--center-x and --center-z are required for a search")
		}
		opts, optErr := f.options(cmd, a)
		if optErr != nil {
			return optErr
		}
		if flags.Changed("radius") {
			s, err = bestfit.Sphere(points, f.centerX, f.centerZ, f.radius, opts...)
		} else {
			s, err = bestfit.SphereRadius(points, f.centerX, f.centerZ, [2]float64{f.radiusMin, f.radiusMax}, opts...)
		}

	default:
		return errors.New("choose --exact, --radius or --radius-min/--radius-max")
	}
	if err != nil {
		return err
	}

	residuals, err := analysis.SphereResiduals(s, points)
	if err != nil {
		return err
	}
	a.logger.Debug("sphere fitted", "file", path, "sphere", s.String(), "rms", residuals.RMS)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Sphere")
	fmt.Fprintln(out, "======")
	fmt.Fprintf(out, "Center:       %s\n", analysis.FormatVector(s.Center))
	fmt.Fprintf(out, "Radius:       %s\n", analysis.FormatMeasurement(s.Radius, ""))
	fmt.Fprintln(out)
	fmt.Fprint(out, residuals.String())
	return checkResiduals(cmd, residuals, f.maxResidual)
}
