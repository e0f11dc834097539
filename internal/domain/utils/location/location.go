package location

import (
	"fmt"
	"time"
)

var Location = time.UTC

// Load sets Location from an IANA name. An empty name keeps UTC.
func Load(name string) (*time.Location, error) {
	if name == "" {
		return Location, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("error while load time location: %w", err)
	}
	Location = loc
	return loc, nil
}
