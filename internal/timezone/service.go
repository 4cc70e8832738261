package timezone

import (
	"fmt"
	"sync"

	"gc-weather/internal/types"

	"github.com/ringsaturn/tzf"
)

// Service resolves the IANA timezone a forecast location lives in
type Service interface {
	GetTimezone(coords types.Coords) (string, error)
}

type service struct {
	finder tzf.F
	mu     sync.RWMutex
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService returns the process-wide finder, loading the timezone polygons on first use.
// The polygon data is large, so it is only loaded once.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{finder: finder}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns names like "America/Toronto" or "America/Vancouver".
func (s *service) GetTimezone(coords types.Coords) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name := s.finder.GetTimezoneName(coords.Longitude, coords.Latitude)
	if name == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates %s", coords)
	}

	return name, nil
}
