package leaderboard_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/commute-leaderboard/classifier"
	"github.com/bitmark-inc/commute-leaderboard/leaderboard"
	"github.com/bitmark-inc/commute-leaderboard/mocks"
	"github.com/bitmark-inc/commute-leaderboard/schema"
)

const (
	segmentToWork   = "to"
	segmentFromWork = "from"
	segmentWork     = "work"
)

// labelClassifier reads the direction of a trip from the segment type,
// so a test can lay out trips without building a whole storyline
type labelClassifier struct{}

func (labelClassifier) CyclingTrips(segments []schema.Segment) []schema.CyclingTrip {
	trips := make([]schema.CyclingTrip, 0)
	for _, s := range segments {
		var d schema.Direction
		switch s.Type {
		case segmentToWork:
			d = schema.ToWork
		case segmentFromWork:
			d = schema.FromWork
		default:
			continue
		}
		for _, a := range s.Activities {
			trips = append(trips, schema.CyclingTrip{Distance: a.Distance, Duration: a.Duration, Direction: d})
		}
	}
	return trips
}

func (labelClassifier) HasWorkplacePresence(segments []schema.Segment) bool {
	for _, s := range segments {
		if s.Type == segmentWork {
			return true
		}
	}
	return false
}

func trip(label string, miles, seconds float64) schema.Segment {
	return schema.Segment{
		Type: label,
		Activities: []schema.Activity{{
			Activity: schema.ActivityCycling,
			Distance: miles * leaderboard.MetersPerMile,
			Duration: seconds,
		}},
	}
}

func work() schema.Segment {
	return schema.Segment{Type: segmentWork}
}

var testUser = &schema.UserProfile{FirstName: "Ada", LastName: "Lovelace"}

func TestComputeEndToEnd(t *testing.T) {
	storyline := schema.Storyline{
		{
			Date: "20140301",
			Segments: []schema.Segment{
				{
					Type: schema.SegmentTypeMove,
					Activities: []schema.Activity{{
						Activity: schema.ActivityCycling,
						Distance: 1609.34,
						Duration: 900,
					}},
				},
				{
					Type:  schema.SegmentTypePlace,
					Place: &schema.Place{ID: 1, Type: schema.PlaceTypeWork},
				},
			},
		},
		{
			Date:     "20140302",
			Segments: []schema.Segment{},
		},
	}

	entry, err := leaderboard.Compute(testUser, "20140301", storyline, classifier.NewPlaceClassifier(classifier.Options{}))
	assert.NoError(t, err)
	assert.Equal(t, &schema.LeaderboardEntry{
		Name:        "Ada Lovelace",
		Distance:    1.0,
		Duration:    "00:15:00",
		Speed:       4.0,
		ToWork:      1,
		FromWork:    0,
		NCommutes:   1,
		CommuteDays: 1,
		WorkDays:    1,
		Rate:        100,
		NewUser:     true,
	}, entry)
}

func TestComputeCountsOneCommutePerDirectionPerDay(t *testing.T) {
	storyline := schema.Storyline{
		{
			Date: "20140303",
			Segments: []schema.Segment{
				trip(segmentToWork, 2.0, 600),
				trip(segmentToWork, 1.0, 300),
				work(),
				trip(segmentFromWork, 3.0, 900),
			},
		},
	}

	entry, err := leaderboard.Compute(testUser, "20130101", storyline, labelClassifier{})
	assert.NoError(t, err)
	assert.Equal(t, 1, entry.ToWork)
	assert.Equal(t, 1, entry.FromWork)
	assert.Equal(t, 2, entry.NCommutes)
	assert.Equal(t, 1, entry.CommuteDays)
	assert.Equal(t, 6.0, entry.Distance)
	assert.Equal(t, "00:30:00", entry.Duration)
	assert.Equal(t, 12.0, entry.Speed)
	assert.False(t, entry.NewUser)
}

func TestComputeCountersAcrossDays(t *testing.T) {
	storyline := schema.Storyline{
		{Date: "20140303", Segments: []schema.Segment{trip(segmentToWork, 2, 600), work(), trip(segmentFromWork, 2, 600)}},
		{Date: "20140304", Segments: []schema.Segment{work()}},
		{Date: "20140305", Segments: []schema.Segment{trip(segmentFromWork, 1, 300), trip(segmentFromWork, 1, 300)}},
		{Date: "20140306", Segments: nil},
	}

	entry, err := leaderboard.Compute(testUser, "20140306", storyline, labelClassifier{})
	assert.NoError(t, err)
	assert.Equal(t, 1, entry.ToWork)
	assert.Equal(t, 2, entry.FromWork)
	assert.Equal(t, entry.ToWork+entry.FromWork, entry.NCommutes)
	assert.Equal(t, 2, entry.CommuteDays)
	assert.Equal(t, 2, entry.WorkDays)
	assert.Equal(t, 100, entry.Rate)
	assert.True(t, entry.NewUser, "first date on a day without segments")
}

func TestComputeRateTruncates(t *testing.T) {
	storyline := schema.Storyline{
		{Date: "20140303", Segments: []schema.Segment{trip(segmentToWork, 1, 300), work()}},
		{Date: "20140304", Segments: []schema.Segment{work()}},
		{Date: "20140305", Segments: []schema.Segment{work()}},
	}

	entry, err := leaderboard.Compute(testUser, "20130101", storyline, labelClassifier{})
	assert.NoError(t, err)
	assert.Equal(t, 33, entry.Rate)
}

func TestComputeRateWithoutWorkDays(t *testing.T) {
	storyline := schema.Storyline{
		{Date: "20140303", Segments: []schema.Segment{trip(segmentToWork, 1, 300)}},
	}

	entry, err := leaderboard.Compute(testUser, "20130101", storyline, labelClassifier{})
	assert.NoError(t, err)
	assert.Equal(t, 1, entry.CommuteDays)
	assert.Equal(t, 0, entry.WorkDays)
	assert.Equal(t, 0, entry.Rate)
}

func TestComputeSpeedWithoutDuration(t *testing.T) {
	storyline := schema.Storyline{
		{Date: "20140303", Segments: []schema.Segment{trip(segmentToWork, 5, 0), trip(segmentFromWork, 3, 0)}},
	}

	entry, err := leaderboard.Compute(testUser, "20130101", storyline, labelClassifier{})
	assert.NoError(t, err)
	assert.Equal(t, 8.0, entry.Distance)
	assert.Equal(t, 0.0, entry.Speed)
	assert.Equal(t, "00:00:00", entry.Duration)
}

func TestComputeTenMiles(t *testing.T) {
	storyline := schema.Storyline{
		{
			Date: "20140303",
			Segments: []schema.Segment{{
				Type:       segmentToWork,
				Activities: []schema.Activity{{Distance: 16093.4, Duration: 3600}},
			}},
		},
	}

	entry, err := leaderboard.Compute(testUser, "20130101", storyline, labelClassifier{})
	assert.NoError(t, err)
	assert.Equal(t, 10.0, entry.Distance)
	assert.Equal(t, 10.0, entry.Speed)
	assert.Equal(t, "01:00:00", entry.Duration)
}

func TestComputeEmptyStoryline(t *testing.T) {
	entry, err := leaderboard.Compute(testUser, "20140301", schema.Storyline{}, labelClassifier{})
	assert.NoError(t, err)
	assert.Equal(t, &schema.LeaderboardEntry{
		Name:     "Ada Lovelace",
		Duration: "00:00:00",
	}, entry)
}

func TestComputeSkipsClassifierForDaysWithoutSegments(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockDayClassifier(ctl)
	c.EXPECT().CyclingTrips(gomock.Any()).Times(0)
	c.EXPECT().HasWorkplacePresence(gomock.Any()).Times(0)

	entry, err := leaderboard.Compute(testUser, "20140302", schema.Storyline{
		{Date: "20140301", Segments: nil},
		{Date: "20140302", Segments: []schema.Segment{}},
	}, c)
	assert.NoError(t, err)
	assert.Equal(t, 0, entry.CommuteDays)
	assert.Equal(t, 0, entry.WorkDays)
	assert.True(t, entry.NewUser)
}

func TestComputeAsksWorkplaceForDaysWithoutTrips(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	segments := []schema.Segment{work()}

	c := mocks.NewMockDayClassifier(ctl)
	c.EXPECT().CyclingTrips(segments).Return([]schema.CyclingTrip{}).Times(1)
	c.EXPECT().HasWorkplacePresence(segments).Return(true).Times(1)

	entry, err := leaderboard.Compute(testUser, "20130101", schema.Storyline{{Date: "20140301", Segments: segments}}, c)
	assert.NoError(t, err)
	assert.Equal(t, 0, entry.CommuteDays)
	assert.Equal(t, 1, entry.WorkDays)
}

func TestComputeDuplicateFirstDate(t *testing.T) {
	entry, err := leaderboard.Compute(testUser, "20140301", schema.Storyline{
		{Date: "20140301"},
		{Date: "20140301"},
	}, labelClassifier{})
	assert.NoError(t, err)
	assert.True(t, entry.NewUser)
}

func TestComputeDoesNotModifyStoryline(t *testing.T) {
	storyline := schema.Storyline{
		{Date: "20140303", Segments: []schema.Segment{trip(segmentToWork, 1, 300), work()}},
	}
	before := storyline[0].Segments[0].Activities[0]

	_, err := leaderboard.Compute(testUser, "20130101", storyline, labelClassifier{})
	assert.NoError(t, err)
	assert.Equal(t, before, storyline[0].Segments[0].Activities[0])
}

func TestComputeContractViolations(t *testing.T) {
	c := labelClassifier{}

	_, err := leaderboard.Compute(nil, "20140301", schema.Storyline{}, c)
	assert.Equal(t, leaderboard.ErrNilProfile, err)

	_, err = leaderboard.Compute(testUser, "", schema.Storyline{}, c)
	assert.Equal(t, leaderboard.ErrEmptyFirstDate, err)

	entry, err := leaderboard.Compute(testUser, "20140301", nil, c)
	assert.Equal(t, leaderboard.ErrNilStoryline, err)
	assert.Nil(t, entry)

	_, err = leaderboard.Compute(testUser, "20140301", schema.Storyline{}, nil)
	assert.Equal(t, leaderboard.ErrNilClassifier, err)
}
