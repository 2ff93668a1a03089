// Package pointcloud loads measured points from STL meshes and plain text
// coordinate files.
package pointcloud

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/philipparndt/gofit/pkg/geometry"
	"github.com/philipparndt/gofit/pkg/numeric"
	"github.com/philipparndt/gofit/pkg/stl"
)

// Format identifies a point file layout
type Format int

const (
	// FormatXYZ is whitespace separated columns with # comments
	FormatXYZ Format = iota
	// FormatCSV is comma separated columns with an optional x,y,z header
	FormatCSV
	// FormatSTL uses the distinct vertices of a mesh
	FormatSTL
)

// FormatOf picks the layout from the file extension
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xyz", ".txt":
		return FormatXYZ, nil
	case ".csv":
		return FormatCSV, nil
	case ".stl":
		return FormatSTL, nil
	default:
		return 0, fmt.Errorf("unsupported point file %q (want .stl, .xyz, .txt or .csv): %w", path, numeric.ErrValue)
	}
}

// Load reads all points of a file. Rows with two columns get z = 0.
func Load(path string) ([]geometry.Vector3, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	if format == FormatSTL {
		model, err := stl.Parse(path)
		if err != nil {
			return nil, err
		}
		return model.Vertices(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	points, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return points, nil
}

// Read decodes points in the given text format
func Read(r io.Reader, format Format) ([]geometry.Vector3, error) {
	switch format {
	case FormatXYZ:
		return readXYZ(r)
	case FormatCSV:
		return readCSV(r)
	case FormatSTL:
		model, err := stl.Read(r)
		if err != nil {
			return nil, err
		}
		return model.Vertices(), nil
	default:
		return nil, fmt.Errorf("unknown format %d: %w", int(format), numeric.ErrValue)
	}
}

// Points2D drops the z coordinate
func Points2D(points []geometry.Vector3) []geometry.Vector2 {
	flat := make([]geometry.Vector2, len(points))
	for i, p := range points {
		flat[i] = p.XY()
	}
	return flat
}

func readXYZ(r io.Reader) ([]geometry.Vector3, error) {
	var points []geometry.Vector3
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(strings.ReplaceAll(text, ",", " "))
		if len(fields) == 0 {
			continue
		}
		p, err := parsePoint(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

func readCSV(r io.Reader) ([]geometry.Vector3, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	var (
		points  []geometry.Vector3
		columns = []int{0, 1, 2}
		first   = true
	)

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) == 0 {
			continue
		}
		if first {
			first = false
			if header, ok := headerColumns(rec); ok {
				columns = header
				continue
			}
		}

		fields := make([]string, 0, 3)
		for _, c := range columns {
			if c < len(rec) {
				fields = append(fields, rec[c])
			}
		}
		line, _ := cr.FieldPos(0)
		p, err := parsePoint(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		points = append(points, p)
	}
	return points, nil
}

// headerColumns maps a header row to the x, y and optional z column indices
func headerColumns(rec []string) ([]int, bool) {
	if _, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64); err == nil {
		return nil, false
	}
	index := map[string]int{}
	for i, name := range rec {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	x, okX := index["x"]
	y, okY := index["y"]
	if !okX || !okY {
		return []int{0, 1, 2}, true
	}
	if z, ok := index["z"]; ok {
		return []int{x, y, z}, true
	}
	return []int{x, y}, true
}

func parsePoint(fields []string) (geometry.Vector3, error) {
	if len(fields) < 2 || len(fields) > 3 {
		return geometry.Vector3{}, fmt.Errorf("want 2 or 3 coordinates, got %d: %w", len(fields), numeric.ErrValue)
	}
	var xyz [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("coordinate %q: %w", f, numeric.ErrType)
		}
		if !numeric.IsFinite(v) {
			return geometry.Vector3{}, fmt.Errorf("coordinate %q is not finite: %w", f, numeric.ErrValue)
		}
		xyz[i] = v
	}
	return geometry.NewVector3(xyz[0], xyz[1], xyz[2]), nil
}
