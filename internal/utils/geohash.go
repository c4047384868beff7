package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/models"
)

// EarthRadiusKm is the mean Earth radius used by every distance calculation
const EarthRadiusKm = 6371.0

// EncodeLocation converts a coordinate to a geohash string
func EncodeLocation(location models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// DecodeGeohash converts a geohash string to the center of its cell
func DecodeGeohash(hash string) models.Coordinate {
	lat, lng := geohash.Decode(hash)
	return models.Coordinate{Latitude: lat, Longitude: lng}
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula.
// Differences are taken in degrees before converting, so the result is reproducible bit for bit
// against the displayed values.
func CalculateDistance(point1, point2 models.Coordinate) float64 {
	dLat := (point2.Latitude - point1.Latitude) * math.Pi / 180
	dLon := (point2.Longitude - point1.Longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(point1.Latitude*math.Pi/180)*
			math.Cos(point2.Latitude*math.Pi/180)*
			math.Sin(dLon/2)*
			math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// DestinationPoint returns the point reached by travelling distanceKm from origin
// along the initial great-circle bearing, in radians clockwise from north.
func DestinationPoint(origin models.Coordinate, bearingRad, distanceKm float64) models.Coordinate {
	delta := distanceKm / EarthRadiusKm
	lat1 := origin.Latitude * math.Pi / 180
	lon1 := origin.Longitude * math.Pi / 180

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(delta) + math.Cos(lat1)*math.Sin(delta)*math.Cos(bearingRad))
	lon2 := lon1 + math.Atan2(
		math.Sin(bearingRad)*math.Sin(delta)*math.Cos(lat1),
		math.Cos(delta)-math.Sin(lat1)*math.Sin(lat2),
	)

	// normalise to [-180, 180)
	lng := math.Mod(lon2*180/math.Pi+540, 360) - 180

	return models.Coordinate{
		Latitude:  lat2 * 180 / math.Pi,
		Longitude: lng,
	}
}

// InitialBearing returns the great-circle bearing from one point towards
// another, in radians clockwise from north within [0, 2*pi).
func InitialBearing(from, to models.Coordinate) float64 {
	lat1 := from.Latitude * math.Pi / 180
	lat2 := to.Latitude * math.Pi / 180
	dLon := (to.Longitude - from.Longitude) * math.Pi / 180

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return math.Mod(math.Atan2(y, x)+2*math.Pi, 2*math.Pi)
}
