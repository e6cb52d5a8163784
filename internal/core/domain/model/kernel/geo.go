package kernel

import (
	"errors"
	"fmt"

	"fluxi/internal/pkg/errs"
	"fluxi/internal/pkg/guard"
)

const (
	// GeoMinLatitude is the minimum valid latitude in degrees.
	GeoMinLatitude = -90.0
	// GeoMaxLatitude is the maximum valid latitude in degrees.
	GeoMaxLatitude = 90.0
	// GeoMinLongitude is the minimum valid longitude in degrees.
	GeoMinLongitude = -180.0
	// GeoMaxLongitude is the maximum valid longitude in degrees.
	GeoMaxLongitude = 180.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("geo point must be created via NewGeoPoint constructor")

// GeoPoint is a validated geographic coordinate pair reported by a courier's
// device. GeoPoint is an immutable value object; its zero value is invalid.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(4.7110, -74.0721) // Bogota
//	if err != nil {
//	    // handle out-of-range coordinates
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the specified coordinates.
// Latitude must be within [-90, 90] and longitude within [-180, 180];
// out-of-range values fail with a range error naming the coordinate.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		point.setLatitude(latitude),
		point.setLongitude(longitude),
	); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Latitude returns the latitude in degrees.
func (g GeoPoint) Latitude() float64 {
	return g.latitude
}

// Longitude returns the longitude in degrees.
func (g GeoPoint) Longitude() float64 {
	return g.longitude
}

// IsEqual compares two points for exact equality.
func (g GeoPoint) IsEqual(other GeoPoint) bool {
	return g.latitude == other.latitude && g.longitude == other.longitude
}

// String returns the point as "lat,lon".
func (g GeoPoint) String() string {
	return fmt.Sprintf("%g,%g", g.latitude, g.longitude)
}

// Validate checks if the GeoPoint was constructed via NewGeoPoint.
func (g GeoPoint) Validate() error {
	return g.guard.Validate(ErrGeoPointIsNotConstructed)
}

func (g *GeoPoint) setLatitude(latitude float64) error {
	if latitude < GeoMinLatitude || latitude > GeoMaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, GeoMinLatitude, GeoMaxLatitude)
	}
	g.latitude = latitude
	return nil
}

func (g *GeoPoint) setLongitude(longitude float64) error {
	if longitude < GeoMinLongitude || longitude > GeoMaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, GeoMinLongitude, GeoMaxLongitude)
	}
	g.longitude = longitude
	return nil
}
