package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/commute-leaderboard/classifier"
	"github.com/bitmark-inc/commute-leaderboard/external/moves"
	"github.com/bitmark-inc/commute-leaderboard/leaderboard"
	"github.com/bitmark-inc/commute-leaderboard/schema"
	"github.com/bitmark-inc/commute-leaderboard/utils"
)

var (
	configFile string
	firstDate  string
	firstName  string
	lastName   string
)

func loadConfig(file string) error {
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("commute")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if file == "" {
		return nil
	}

	viper.SetConfigFile(file)
	return viper.ReadInConfig()
}

func initLog() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func newClassifier() (classifier.DayClassifier, error) {
	o, err := classifier.OptionsFromConfig(viper.GetViper())
	if err != nil {
		return nil, err
	}
	return classifier.NewPlaceClassifier(o), nil
}

func readStoryline(path string) (schema.Storyline, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	storyline := schema.Storyline{}
	if err := json.Unmarshal(data, &storyline); err != nil {
		return nil, fmt.Errorf("decode storyline: %w", err)
	}
	return storyline, nil
}

func printEntry(out io.Writer, storyline schema.Storyline) error {
	c, err := newClassifier()
	if err != nil {
		return err
	}

	entry, err := leaderboard.Compute(&schema.UserProfile{
		FirstName: firstName,
		LastName:  lastName,
	}, firstDate, storyline, c)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(entry)
}

func newRootCommand() *cobra.Command {
	var storylineFile string

	root := &cobra.Command{
		Use:   "compute",
		Short: "Compute the leaderboard record of a Moves storyline",
		Long: `Compute reads a storyline in the format of the Moves daily storyline
endpoint and prints the leaderboard record of its user as JSON.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initLog()
			return loadConfig(configFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			storyline, err := readStoryline(storylineFile)
			if err != nil {
				return err
			}
			return printEntry(cmd.OutOrStdout(), storyline)
		},
	}

	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path of configuration file with the classifier places")
	root.PersistentFlags().StringVar(&firstDate, "first-date", "", "first date of the user in Moves, yyyyMMdd")
	root.PersistentFlags().StringVar(&firstName, "first-name", "", "first name of the user")
	root.PersistentFlags().StringVar(&lastName, "last-name", "", "last name of the user")
	_ = root.MarkPersistentFlagRequired("first-date")

	root.Flags().StringVarP(&storylineFile, "storyline", "s", "-", "storyline json file, - for stdin")

	root.AddCommand(newMovesCommand())

	return root
}

// newMovesCommand fetches the storyline from Moves instead of a file
func newMovesCommand() *cobra.Command {
	var (
		accessToken string
		period      string
	)

	cmd := &cobra.Command{
		Use:   "moves",
		Short: "Fetch a period of storyline from Moves and compute its record",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if period == "" {
				period = utils.CurrentPeriod(now)
			}

			from, to, err := utils.PeriodRange(period, now)
			if err != nil {
				return err
			}

			client := moves.New(moves.Config{
				AccessToken: accessToken,
				APIURL:      viper.GetString("moves.api_url"),
			})

			storyline, err := client.StorylineRange(context.Background(), "", from, to)
			if err != nil {
				return err
			}

			if info := client.LastResponse(); info != nil {
				log.WithField("prefix", "moves").Infof("rate limit remaining: %s/hour, %s/minute", info.HourRemaining, info.MinuteRemaining)
			}

			return printEntry(cmd.OutOrStdout(), storyline)
		},
	}

	cmd.Flags().StringVarP(&accessToken, "token", "t", os.Getenv("MOVES_ACCESS_TOKEN"), "Moves access token")
	cmd.Flags().StringVarP(&period, "period", "p", "", "period to fetch, yyyy-MM, the running month by default")

	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
