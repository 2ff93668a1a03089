package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/gofit/pkg/analysis"
	"github.com/philipparndt/gofit/pkg/geometry"
	"github.com/philipparndt/gofit/pkg/pointcloud"
	"github.com/philipparndt/gofit/pkg/stl"
	"github.com/spf13/cobra"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Summarize the points of a file",
		Long:  "Show the point count and bounds, which help choosing the fixed center coordinates and radius ranges of a search.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := pointcloud.FormatOf(args[0])
			if err != nil {
				return err
			}
			if format == pointcloud.FormatSTL {
				return a.meshInfo(cmd.OutOrStdout(), args[0])
			}

			points, err := pointcloud.Load(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("points loaded", "file", args[0], "count", len(points))

			out := cmd.OutOrStdout()
			printInfoHeader(out, args[0])
			fmt.Fprintf(out, "Points: %d\n", len(points))
			if len(points) > 0 {
				printBounds(out, geometry.BoundsOf(points))
			}
			return nil
		},
	}
}

// meshInfo reports facets and distinct vertices along with the mesh bounds
func (a *app) meshInfo(out io.Writer, path string) error {
	model, err := stl.Parse(path)
	if err != nil {
		return err
	}
	vertices := model.Vertices()
	a.logger.Debug("mesh loaded", "file", path, "triangles", model.TriangleCount(), "vertices", len(vertices))

	printInfoHeader(out, path)
	if model.Name != "" {
		fmt.Fprintf(out, "Name: %s\n", model.Name)
	}
	fmt.Fprintf(out, "Triangles: %d\n", model.TriangleCount())
	fmt.Fprintf(out, "Points: %d\n", len(vertices))
	if model.TriangleCount() > 0 {
		printBounds(out, model.BoundingBox())
	}
	return nil
}

func printInfoHeader(out io.Writer, path string) {
	fmt.Fprintln(out, "Point Information")
	fmt.Fprintln(out, "=================")
	fmt.Fprintf(out, "File: %s\n", path)
}

func printBounds(out io.Writer, bbox geometry.BoundingBox) {
	size := bbox.Size()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(bbox.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(bbox.Max))
	fmt.Fprintf(out, "  Center: %s\n\n", analysis.FormatVector(bbox.Center()))

	fmt.Fprintln(out, "Dimensions:")
	fmt.Fprintf(out, "  Width (X): %.6f units\n", size.X)
	fmt.Fprintf(out, "  Depth (Y): %.6f units\n", size.Y)
	fmt.Fprintf(out, "  Height (Z): %.6f units\n", size.Z)
	fmt.Fprintf(out, "  Diagonal: %.6f units\n", bbox.Diagonal())
}
