package schema

const (
	SegmentTypeMove  = "move"
	SegmentTypePlace = "place"
	SegmentTypeOff   = "off"
)

const (
	PlaceTypeUnknown    = "unknown"
	PlaceTypeHome       = "home"
	PlaceTypeSchool     = "school"
	PlaceTypeWork       = "work"
	PlaceTypeUser       = "user"
	PlaceTypeFoursquare = "foursquare"
)

const (
	ActivityCycling = "cycling"
	ActivityWalking = "walking"
	ActivityRunning = "running"

	// short names returned by the 1.0 storyline endpoints
	ActivityCyclingShort = "cyc"
	ActivityWalkingShort = "wlk"
	ActivityRunningShort = "run"
)

// Storyline is the daily storyline of one user ordered by date ascending
type Storyline []Day

// Day - one calendar date of a storyline
type Day struct {
	Date         string    `json:"date" bson:"date"`
	Summary      []Summary `json:"summary,omitempty" bson:"summary,omitempty"`
	Segments     []Segment `json:"segments" bson:"segments"`
	CaloriesIdle int       `json:"caloriesIdle,omitempty" bson:"calories_idle,omitempty"`
	LastUpdate   string    `json:"lastUpdate,omitempty" bson:"last_update,omitempty"`
}

// Summary - per activity daily summary
type Summary struct {
	Activity string  `json:"activity"`
	Group    string  `json:"group,omitempty"`
	Duration float64 `json:"duration"`
	Distance float64 `json:"distance"`
	Steps    int     `json:"steps,omitempty"`
	Calories int     `json:"calories,omitempty"`
}

// Segment - a recorded interval of a day, either a move or a stay at a place
type Segment struct {
	Type       string     `json:"type" bson:"type"`
	StartTime  string     `json:"startTime" bson:"start_time"`
	EndTime    string     `json:"endTime" bson:"end_time"`
	Place      *Place     `json:"place,omitempty" bson:"place,omitempty"`
	Activities []Activity `json:"activities,omitempty" bson:"activities,omitempty"`
	LastUpdate string     `json:"lastUpdate,omitempty" bson:"last_update,omitempty"`
}

// Place - where a place segment happened
type Place struct {
	ID           int64      `json:"id" bson:"id"`
	Name         string     `json:"name,omitempty" bson:"name,omitempty"`
	Type         string     `json:"type" bson:"type"`
	FoursquareID string     `json:"foursquareId,omitempty" bson:"foursquare_id,omitempty"`
	Location     TrackPoint `json:"location" bson:"location"`
}

// Activity - a movement recorded within a segment
type Activity struct {
	Activity    string       `json:"activity" bson:"activity"`
	Group       string       `json:"group,omitempty" bson:"group,omitempty"`
	Manual      bool         `json:"manual" bson:"manual"`
	StartTime   string       `json:"startTime" bson:"start_time"`
	EndTime     string       `json:"endTime" bson:"end_time"`
	Duration    float64      `json:"duration" bson:"duration"`
	Distance    float64      `json:"distance" bson:"distance"`
	Steps       int          `json:"steps,omitempty" bson:"steps,omitempty"`
	Calories    int          `json:"calories,omitempty" bson:"calories,omitempty"`
	TrackPoints []TrackPoint `json:"trackPoints,omitempty" bson:"track_points,omitempty"`
}

// TrackPoint - a sampled coordinate
type TrackPoint struct {
	Lat  float64 `json:"lat" bson:"lat"`
	Lon  float64 `json:"lon" bson:"lon"`
	Time string  `json:"time,omitempty" bson:"time,omitempty"`
}

// IsCycling returns true for both long and short cycling activity names
func (a Activity) IsCycling() bool {
	return a.Activity == ActivityCycling || a.Activity == ActivityCyclingShort
}
