package main

import (
	"fmt"

	"github.com/philipparndt/gofit/pkg/analysis"
	"github.com/philipparndt/gofit/pkg/geometry"
	"github.com/philipparndt/gofit/pkg/pointcloud"
	"github.com/spf13/cobra"
)

func newArcCmd(a *app) *cobra.Command {
	var (
		axis        string
		watch       bool
		maxResidual float64
	)
	cmd := &cobra.Command{
		Use:   "arc <file>",
		Short: "Fit a circle to 3D points on an axis aligned arc",
		Long: `Fit a circle through the first, middle and last point of an arc whose
plane is orthogonal to --axis. The remaining points only enter the residuals.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			constraint, err := geometry.ParseAxis(axis)
			if err != nil {
				return err
			}
			return a.runFit(cmd, args[0], watch, func() error {
				return a.fitArc(cmd, args[0], constraint, maxResidual)
			})
		},
	}
	cmd.Flags().StringVar(&axis, "axis", "z", "Axis orthogonal to the arc plane (x, y, z)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Fit again whenever the file changes")
	registerMaxResidual(cmd, &maxResidual)
	return cmd
}

func (a *app) fitArc(cmd *cobra.Command, path string, axis geometry.Axis, maxResidual float64) error {
	points, err := pointcloud.Load(path)
	if err != nil {
		return err
	}
	fit, err := geometry.FitCircleToPoints3D(points, axis)
	if err != nil {
		return err
	}
	residuals, err := analysis.ArcResiduals(fit, points)
	if err != nil {
		return err
	}
	a.logger.Debug("arc fitted", "file", path, "axis", axis.String(), "radius", fit.Radius)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Arc")
	fmt.Fprintln(out, "===")
	fmt.Fprintf(out, "Center:       %s\n", analysis.FormatVector(fit.Center))
	fmt.Fprintf(out, "Radius:       %s\n", analysis.FormatMeasurement(fit.Radius, ""))
	fmt.Fprintf(out, "Axis:         %s\n", axis)
	fmt.Fprintln(out)
	fmt.Fprint(out, residuals.String())
	return checkResiduals(cmd, residuals, maxResidual)
}
