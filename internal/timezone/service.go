package timezone

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ringsaturn/tzf"
)

var ErrUnknownTimezone = errors.New("could not determine timezone")

// Service provides timezone lookup functionality
type Service interface {
	// GetTimezone returns the IANA timezone name for the given coordinates
	GetTimezone(latitude, longitude float64) (string, error)
}

// service implements timezone lookup using tzf
type service struct {
	finder tzf.F
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService creates or returns the singleton timezone service.
// tzf.Finder keeps its polygon data in memory, so it is loaded once per process.
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

// GetTimezone returns names like "America/Denver" or "Europe/London".
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	name := s.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return "", fmt.Errorf("%w for coordinates lat=%f, lon=%f", ErrUnknownTimezone, latitude, longitude)
	}
	return name, nil
}

// Location resolves the coordinates to a loaded *time.Location.
func Location(svc Service, latitude, longitude float64) (*time.Location, error) {
	name, err := svc.GetTimezone(latitude, longitude)
	if err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}
	return loc, nil
}
