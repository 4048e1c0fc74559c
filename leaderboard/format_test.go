package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type clockTestCase struct {
	seconds  float64
	expected string
}

func TestFormatClock(t *testing.T) {
	cases := []clockTestCase{
		{0, "00:00:00"},
		{59.9, "00:00:59"},
		{900, "00:15:00"},
		{3661, "01:01:01"},
		{86399, "23:59:59"},
		{86400, "00:00:00"},
		{30 * 3600, "06:00:00"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, FormatClock(c.seconds), "seconds: %v", c.seconds)
	}
}

type roundTestCase struct {
	value    float64
	expected float64
}

func TestRoundTenth(t *testing.T) {
	cases := []roundTestCase{
		{0, 0},
		{10.04, 10.0},
		{10.06, 10.1},
		{0.25, 0.3},
		{-0.25, -0.3},
		{3.14159, 3.1},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, RoundTenth(c.value), "value: %v", c.value)
	}
}

func TestRate(t *testing.T) {
	assert.Equal(t, 0, Rate(0, 0))
	assert.Equal(t, 0, Rate(5, 0))
	assert.Equal(t, 50, Rate(1, 2))
	assert.Equal(t, 66, Rate(2, 3))
	assert.Equal(t, 150, Rate(3, 2))
}

func TestSpeedMPH(t *testing.T) {
	assert.Equal(t, 0.0, SpeedMPH(12, 0))
	assert.Equal(t, 4.0, SpeedMPH(1, 900))
	assert.Equal(t, 12.0, SpeedMPH(6, 1800))
}

func TestMetersToMiles(t *testing.T) {
	assert.Equal(t, 1.0, MetersToMiles(1609.34))
	assert.Equal(t, 0.0, MetersToMiles(0))
}
