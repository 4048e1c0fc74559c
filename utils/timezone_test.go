package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetLocation(t *testing.T) {
	tz8 := GetLocation("GMT+8")
	assert.NotNil(t, tz8)
	assert.Equal(t, "GMT+8", tz8.String())

	tz_8 := GetLocation("gmt-8")
	assert.NotNil(t, tz_8)
	assert.Equal(t, "GMT-8", tz_8.String())

	utc := GetLocation("UTC")
	assert.NotNil(t, utc)
	assert.Equal(t, "UTC", utc.String())

	assert.Nil(t, GetLocation(""))
	assert.Nil(t, GetLocation("Nowhere/Land"))
}

func TestLocationOrUTC(t *testing.T) {
	assert.Equal(t, time.UTC, LocationOrUTC("Nowhere/Land"))
	assert.Equal(t, "GMT+3", LocationOrUTC("GMT+3").String())
}
