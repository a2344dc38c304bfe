// Package gnflora catalogs plant species that occur near a geographic point
// by joining GBIF occurrence data with a locally indexed e-Flora dataset.
package gnflora

var (
	// Version of GNflora, set during the build.
	Version = "v0.1.0"

	// Build timestamp, set during the build.
	Build = "n/a"
)
