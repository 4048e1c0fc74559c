package utils

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLocalize(t *testing.T) {
	os.Setenv("TEST_I18N_DIR", "../i18n")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("test")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	InitI18NBundle()

	data := map[string]interface{}{"Period": "2014-03"}

	assert.Equal(t, "Bike commute leaderboard, 2014-03", Localize(NewLocalizer("en"), "leaderboard.title", data))
	assert.Equal(t, "單車通勤排行榜，2014-03", Localize(NewLocalizer("zh-TW"), "leaderboard.title", data))
	assert.Equal(t, "Bike commute leaderboard, 2014-03", Localize(NewLocalizer("fr"), "leaderboard.title", data))
	assert.Equal(t, "leaderboard.unknown", Localize(NewLocalizer("en"), "leaderboard.unknown", nil))
}
