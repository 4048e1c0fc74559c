package utils

import (
	"fmt"
	"strings"
	"time"
)

var locations map[string]*time.Location = map[string]*time.Location{}

func init() {
	for i := time.Duration(-12); i < 15; i++ {
		name := fmt.Sprintf("GMT%+d", i)
		locations[name] = time.FixedZone(name, int((i * time.Hour).Seconds()))
	}
}

// GetLocation returns the location of an IANA timezone id, such as the one
// in a Moves profile, or of a GMT-X format timezone. It returns nil for an
// unknown timezone.
func GetLocation(timezone string) *time.Location {
	if tz, ok := locations[strings.ToUpper(timezone)]; ok {
		return tz
	}

	if timezone == "" {
		return nil
	}

	if loc, err := time.LoadLocation(timezone); err == nil {
		return loc
	}

	return nil
}

// LocationOrUTC is GetLocation with UTC as the fallback
func LocationOrUTC(timezone string) *time.Location {
	if loc := GetLocation(timezone); loc != nil {
		return loc
	}
	return time.UTC
}
