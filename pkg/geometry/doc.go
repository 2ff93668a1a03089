// Package geometry provides the point types and the circle and sphere
// primitives used by the fitting engine, together with the closed-form
// solvers that construct a primitive from exactly three or four points.
package geometry
