package stl

import (
	"github.com/philipparndt/gofit/pkg/geometry"
)

// Model is a triangle mesh read from an STL file
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates an empty model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle appends a facet
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of facets
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// Vertices returns every distinct corner of the mesh in first-seen order
func (m *Model) Vertices() []geometry.Vector3 {
	seen := make(map[geometry.Vector3]struct{}, len(m.Triangles)*3/2)
	vertices := make([]geometry.Vector3, 0, len(m.Triangles)*3/2)
	for _, triangle := range m.Triangles {
		for _, v := range triangle.Vertices() {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			vertices = append(vertices, v)
		}
	}
	return vertices
}

// BoundingBox returns the bounds of all facets
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		for _, v := range triangle.Vertices() {
			bbox.Extend(v)
		}
	}
	return bbox
}
