package occurrence

import (
	"math"

	"github.com/gnames/gnflora/pkg/config"
	"github.com/gnames/gnflora/pkg/flora"
)

// NewBBox computes a bounding box around a point. The latitude offset is
// radiusKm/111.32 degrees, the longitude offset is the latitude offset
// divided by |cos(lat)|. The box is clamped to valid coordinates, near the
// poles it spans all longitudes. The box does not wrap around the
// antimeridian: for a point at longitude 179.5 the part of the circle
// beyond 180 is not searched, because GBIF takes one longitude range per
// request.
func NewBBox(lat, lon, radiusKm float64) flora.BBox {
	latOff := radiusKm / config.KmPerDegreeLat

	lonOff := 180.0
	cos := math.Abs(math.Cos(lat * math.Pi / 180))
	if cos > 1e-9 {
		lonOff = latOff / cos
	}

	return flora.BBox{
		MinLat: clamp(lat-latOff, -90, 90),
		MaxLat: clamp(lat+latOff, -90, 90),
		MinLon: clamp(lon-lonOff, -180, 180),
		MaxLon: clamp(lon+lonOff, -180, 180),
	}
}

func clamp(f, min, max float64) float64 {
	return math.Max(min, math.Min(max, f))
}
