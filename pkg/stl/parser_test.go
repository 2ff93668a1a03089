package stl

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/gofit/pkg/geometry"
	"github.com/philipparndt/gofit/pkg/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tetrahedron = `solid tetra
  facet normal 0 0 -1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
  facet normal 0 -1 0
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 0 1
    endloop
  endfacet
endsolid tetra
`

func binarySTL(t *testing.T, name string, facets []binaryFacet) []byte {
	t.Helper()
	var buf bytes.Buffer
	header := make([]byte, binaryHeaderSize)
	copy(header, name)
	buf.Write(header)
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(len(facets))))
	for _, f := range facets {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, f))
	}
	return buf.Bytes()
}

func TestReadASCII(t *testing.T) {
	model, err := Read(strings.NewReader(tetrahedron))
	require.NoError(t, err)

	assert.Equal(t, "tetra", model.Name)
	require.Equal(t, 2, model.TriangleCount())
	assert.Equal(t, geometry.NewVector3(0, 0, -1), model.Triangles[0].Normal)
	assert.Equal(t, geometry.NewVector3(0, 0, 1), model.Triangles[1].V3)
}

func TestReadBinary(t *testing.T) {
	facets := []binaryFacet{
		{Normal: [3]float32{0, 0, 1}, Corners: [3][3]float32{{0, 0, 0}, {2, 0, 0}, {0, 2, 0}}},
		{Normal: [3]float32{0, 0, 1}, Corners: [3][3]float32{{2, 0, 0}, {2, 2, 0}, {0, 2, 0}}},
	}

	for _, name := range []string{"binary part", "solid looking header"} {
		t.Run(name, func(t *testing.T) {
			model, err := Read(bytes.NewReader(binarySTL(t, name, facets)))
			require.NoError(t, err)
			assert.Equal(t, name, model.Name)
			require.Equal(t, 2, model.TriangleCount())
			assert.Equal(t, geometry.NewVector3(2, 2, 0), model.Triangles[1].V2)
		})
	}
}

func TestReadBinaryTruncated(t *testing.T) {
	data := binarySTL(t, "short", []binaryFacet{{}, {}})
	_, err := Read(bytes.NewReader(data[:len(data)-10]))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "triangle 1 of 2")
}

func TestReadNonFinite(t *testing.T) {
	_, err := Read(strings.NewReader("solid x\nfacet normal 0 0 1\nvertex 0 nan 0\nvertex 1 0 0\nvertex 0 1 0\nendfacet\nendsolid\n"))
	require.ErrorIs(t, err, numeric.ErrValue)
	assert.Contains(t, err.Error(), "line 3")

	inf := float32(math.Inf(1))
	data := binarySTL(t, "inf", []binaryFacet{
		{Corners: [3][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}},
		{Corners: [3][3]float32{{0, 0, 0}, {inf, 0, 0}, {0, 1, 0}}},
	})
	_, err = Read(bytes.NewReader(data))
	require.ErrorIs(t, err, numeric.ErrValue)
	assert.Contains(t, err.Error(), "triangle 1")
}

func TestReadErrors(t *testing.T) {
	for name, input := range map[string]string{
		"empty":          "",
		"bad vertex":     "solid x\nfacet normal 0 0 1\nvertex 0 zero 0\nendfacet\nendsolid\n",
		"short vertex":   "solid x\nfacet normal 0 0 1\nvertex 0 0\nendfacet\nendsolid\n",
		"missing corner": "solid x\nfacet normal 0 0 1\nvertex 0 0 0\nvertex 1 0 0\nendfacet\nendsolid\n",
		"bad normal":     "solid x\nfacet 0 0 1\nendfacet\nendsolid\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Read(strings.NewReader(input))
			require.Error(t, err)
		})
	}
}

func TestVertices(t *testing.T) {
	model, err := Read(strings.NewReader(tetrahedron))
	require.NoError(t, err)

	assert.Equal(t, []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
		geometry.NewVector3(0, 0, 1),
	}, model.Vertices())

	bbox := model.BoundingBox()
	assert.Equal(t, geometry.NewVector3(0, 0, 0), bbox.Min)
	assert.Equal(t, geometry.NewVector3(1, 1, 1), bbox.Max)
}

func TestParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetra.stl")
	require.NoError(t, os.WriteFile(path, []byte(tetrahedron), 0o644))

	model, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, 2, model.TriangleCount())

	_, err = Parse(filepath.Join(t.TempDir(), "missing.stl"))
	require.Error(t, err)
}
