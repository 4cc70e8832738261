package forecast

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strings"

	"gc-weather/internal/types"
)

const locationPath = "/api/app/en/Location/"

// ParseCoords validates raw caller input. Latitude is checked before longitude.
func ParseCoords(latitude, longitude any) (types.Coords, error) {
	lat, latOK := toFloat(latitude)
	lon, lonOK := toFloat(longitude)
	if !latOK || !lonOK {
		return types.Coords{}, ErrNotNumeric
	}

	if lat < -90 || lat > 90 {
		return types.Coords{}, ErrInvalidLatitude
	}
	if lon < -180 || lon > 180 {
		return types.Coords{}, ErrInvalidLongitude
	}

	return types.NewCoords(lat, lon), nil
}

// toFloat accepts every Go numeric kind and json.Number. NaN is not a number here.
func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// BuildForecastURL embeds the coordinates, unrounded, into the location endpoint.
func BuildForecastURL(baseURL string, coords types.Coords) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + locationPath + coords.String()

	q := u.Query()
	q.Set("type", "city")
	u.RawQuery = q.Encode()

	return u.String(), nil
}
