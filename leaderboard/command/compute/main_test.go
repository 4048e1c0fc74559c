package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/commute-leaderboard/schema"
)

const testStoryline = `[{
	"date": "20140301",
	"segments": [
		{"type": "place", "place": {"id": 1, "type": "home"}},
		{"type": "move", "activities": [{"activity": "cycling", "duration": 1800, "distance": 8046.7}]},
		{"type": "place", "place": {"id": 2, "type": "work"}},
		{"type": "move", "activities": [{"activity": "cycling", "duration": 1800, "distance": 8046.7}]},
		{"type": "place", "place": {"id": 1, "type": "home"}}
	]
}, {
	"date": "20140302",
	"segments": null
}]`

func TestComputeCommand(t *testing.T) {
	dir, err := ioutil.TempDir("", "compute")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "storyline.json")
	assert.NoError(t, ioutil.WriteFile(file, []byte(testStoryline), 0600))

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--storyline", file, "--first-date", "20140301", "--first-name", "Ada", "--last-name", "Lovelace"})
	assert.NoError(t, cmd.Execute())

	var entry schema.LeaderboardEntry
	assert.NoError(t, json.Unmarshal(out.Bytes(), &entry))
	assert.Equal(t, "Ada Lovelace", entry.Name)
	assert.Equal(t, 10.0, entry.Distance)
	assert.Equal(t, "01:00:00", entry.Duration)
	assert.Equal(t, 10.0, entry.Speed)
	assert.Equal(t, 1, entry.ToWork)
	assert.Equal(t, 1, entry.FromWork)
	assert.Equal(t, 2, entry.NCommutes)
	assert.Equal(t, 100, entry.Rate)
	assert.True(t, entry.NewUser)
}

func TestComputeCommandRequiresFirstDate(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(ioutil.Discard)
	cmd.SetErr(ioutil.Discard)
	cmd.SetArgs([]string{"--storyline", "missing.json"})
	assert.Error(t, cmd.Execute())
}
