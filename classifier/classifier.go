package classifier

import (
	"strings"

	"github.com/bitmark-inc/commute-leaderboard/schema"
)

// DayClassifier - interface to find cycling commutes in the segments of one day
type DayClassifier interface {
	// CyclingTrips returns the cycling trips with a resolved direction,
	// in the order of the given segments
	CyclingTrips(segments []schema.Segment) []schema.CyclingTrip

	// HasWorkplacePresence reports if any segment is a stay at a workplace
	HasWorkplacePresence(segments []schema.Segment) bool
}

// Options - extra places to recognize besides the labels of Moves
type Options struct {
	WorkplaceIDs   []int64
	WorkplaceNames []string
	HomeIDs        []int64
	HomeNames      []string
	IgnoreManual   bool
}

type anchor int

const (
	noAnchor anchor = iota
	homeAnchor
	workAnchor
)

// PlaceClassifier orients cycling moves by the home and work places around them
type PlaceClassifier struct {
	workIDs      map[int64]struct{}
	workNames    map[string]struct{}
	homeIDs      map[int64]struct{}
	homeNames    map[string]struct{}
	ignoreManual bool
}

func NewPlaceClassifier(o Options) *PlaceClassifier {
	return &PlaceClassifier{
		workIDs:      idSet(o.WorkplaceIDs),
		workNames:    nameSet(o.WorkplaceNames),
		homeIDs:      idSet(o.HomeIDs),
		homeNames:    nameSet(o.HomeNames),
		ignoreManual: o.IgnoreManual,
	}
}

// CyclingTrips returns every cycling activity in a move segment whose
// direction can be resolved. A move is heading to work when the next anchor
// place is a workplace and the previous one is not, and heading from work
// in the opposite case.
func (p *PlaceClassifier) CyclingTrips(segments []schema.Segment) []schema.CyclingTrip {
	trips := make([]schema.CyclingTrip, 0)

	for i, s := range segments {
		if s.Type != schema.SegmentTypeMove {
			continue
		}

		direction := p.direction(segments, i)
		if direction == schema.NoDirection {
			continue
		}

		for _, a := range s.Activities {
			if !a.IsCycling() {
				continue
			}
			if a.Manual && p.ignoreManual {
				continue
			}
			trips = append(trips, schema.CyclingTrip{
				Distance:  a.Distance,
				Duration:  a.Duration,
				Direction: direction,
			})
		}
	}

	return trips
}

// HasWorkplacePresence returns on the first workplace found
func (p *PlaceClassifier) HasWorkplacePresence(segments []schema.Segment) bool {
	for _, s := range segments {
		if p.anchorOf(s) == workAnchor {
			return true
		}
	}
	return false
}

func (p *PlaceClassifier) direction(segments []schema.Segment, index int) schema.Direction {
	next := noAnchor
	for i := index + 1; i < len(segments); i++ {
		if a := p.anchorOf(segments[i]); a != noAnchor {
			next = a
			break
		}
	}

	previous := noAnchor
	for i := index - 1; i >= 0; i-- {
		if a := p.anchorOf(segments[i]); a != noAnchor {
			previous = a
			break
		}
	}

	switch {
	case next == workAnchor && previous != workAnchor:
		return schema.ToWork
	case previous == workAnchor && next != workAnchor:
		return schema.FromWork
	default:
		return schema.NoDirection
	}
}

func (p *PlaceClassifier) anchorOf(s schema.Segment) anchor {
	if s.Type != schema.SegmentTypePlace || s.Place == nil {
		return noAnchor
	}

	place := s.Place
	name := normalize(place.Name)

	if place.Type == schema.PlaceTypeWork {
		return workAnchor
	}
	if _, ok := p.workIDs[place.ID]; ok {
		return workAnchor
	}
	if _, ok := p.workNames[name]; ok && name != "" {
		return workAnchor
	}

	if place.Type == schema.PlaceTypeHome {
		return homeAnchor
	}
	if _, ok := p.homeIDs[place.ID]; ok {
		return homeAnchor
	}
	if _, ok := p.homeNames[name]; ok && name != "" {
		return homeAnchor
	}

	return noAnchor
}

func idSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func nameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[normalize(n)] = struct{}{}
	}
	return set
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
