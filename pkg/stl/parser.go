package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gofit/pkg/geometry"
	"github.com/philipparndt/gofit/pkg/numeric"
)

const (
	binaryHeaderSize = 80
	// sniffSize bounds the prefix inspected to tell ASCII from binary
	sniffSize = 512
)

// binaryFacet mirrors one little-endian facet record
type binaryFacet struct {
	Normal    [3]float32
	Corners   [3][3]float32
	Attribute uint16
}

// Parse reads an ASCII or binary STL file
func Parse(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	model, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return model, nil
}

// Read detects the STL flavour from the first bytes of r and decodes it.
// Binary files whose header happens to start with "solid" are recognised
// by the absence of any facet keyword in the prefix.
func Read(r io.Reader) (*Model, error) {
	br := bufio.NewReaderSize(r, sniffSize)
	prefix, err := br.Peek(sniffSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}
	if len(prefix) == 0 {
		return nil, fmt.Errorf("empty STL input: %w", io.ErrUnexpectedEOF)
	}

	if isASCII(prefix) {
		return parseASCII(br)
	}
	return parseBinary(br)
}

func isASCII(prefix []byte) bool {
	trimmed := bytes.TrimLeft(prefix, " \t\r\n")
	if !bytes.HasPrefix(trimmed, []byte("solid")) {
		return false
	}
	return bytes.Contains(trimmed, []byte("facet")) || bytes.Contains(trimmed, []byte("endsolid"))
}

func parseASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := NewModel("")

	var normal geometry.Vector3
	corners := make([]geometry.Vector3, 0, 3)
	line := 0

	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) != 5 || fields[1] != "normal" {
				return nil, fmt.Errorf("line %d: malformed facet %q", line, scanner.Text())
			}
			v, err := parseTriple(fields[2:])
			if err != nil {
				return nil, fmt.Errorf("line %d: facet normal: %w", line, err)
			}
			normal = v

		case "vertex":
			if len(fields) != 4 {
				return nil, fmt.Errorf("line %d: malformed vertex %q", line, scanner.Text())
			}
			v, err := parseTriple(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", line, err)
			}
			if !v.IsFinite() {
				return nil, fmt.Errorf("line %d: vertex %s is not finite: %w", line, v, numeric.ErrValue)
			}
			corners = append(corners, v)

		case "endfacet":
			if len(corners) != 3 {
				return nil, fmt.Errorf("line %d: facet has %d vertices, want 3", line, len(corners))
			}
			model.AddTriangle(geometry.NewTriangle(normal, corners[0], corners[1], corners[2]))
			corners = corners[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}
	return model, nil
}

func parseTriple(fields []string) (geometry.Vector3, error) {
	var xyz [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geometry.Vector3{}, err
		}
		xyz[i] = v
	}
	return geometry.NewVector3(xyz[0], xyz[1], xyz[2]), nil
}

func parseBinary(reader io.Reader) (*Model, error) {
	header := make([]byte, binaryHeaderSize)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	model := NewModel(strings.TrimSpace(string(bytes.TrimRight(header, "\x00"))))

	var count uint32
	if err := binary.Read(reader, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	var facet binaryFacet
	for i := uint32(0); i < count; i++ {
		if err := binary.Read(reader, binary.LittleEndian, &facet); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d of %d: %w", i, count, err)
		}
		triangle := geometry.NewTriangle(
			toVector(facet.Normal),
			toVector(facet.Corners[0]),
			toVector(facet.Corners[1]),
			toVector(facet.Corners[2]),
		)
		for _, v := range triangle.Vertices() {
			if !v.IsFinite() {
				return nil, fmt.Errorf("triangle %d: vertex %s is not finite: %w", i, v, numeric.ErrValue)
			}
		}
		model.AddTriangle(triangle)
	}
	return model, nil
}

func toVector(v [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
}
