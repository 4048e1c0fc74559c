package schema

// Direction is the commute direction of a cycling trip
type Direction int

const (
	NoDirection Direction = iota
	ToWork
	FromWork
)

func (d Direction) String() string {
	switch d {
	case ToWork:
		return "TO_WORK"
	case FromWork:
		return "FROM_WORK"
	default:
		return "NONE"
	}
}

// CyclingTrip is a cycling activity tagged with a commute direction.
// Distance is in meters and Duration in seconds.
type CyclingTrip struct {
	Distance  float64
	Duration  float64
	Direction Direction
}
