// Package numeric holds the tolerance comparisons, error kinds and
// sequence preconditions shared by the fitting packages.
package numeric
