package forecast

import (
	"errors"
	"fmt"
)

var (
	ErrNotNumeric       = errors.New("latitude and longitude must be numbers")
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90 degrees")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180 degrees")
)

// MissingKeyError reports a key the pipeline requires but the payload lacks.
// Executors and decoders return it to get the "Unable to process forecast data"
// rendering; the built-in navigation defaults every key and never raises it.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing key '%s'", e.Key)
}
