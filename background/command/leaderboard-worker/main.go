package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bitmark-inc/commute-leaderboard/background/refresh"
	"github.com/bitmark-inc/commute-leaderboard/classifier"
	"github.com/bitmark-inc/commute-leaderboard/external/cadence"
	"github.com/bitmark-inc/commute-leaderboard/external/moves"
	"github.com/bitmark-inc/commute-leaderboard/leaderboard"
	"github.com/bitmark-inc/commute-leaderboard/store"
	"github.com/bitmark-inc/commute-leaderboard/utils"
)

var logger *zap.Logger

func init() {
	logger = buildLogger()
}

func buildLogger() *zap.Logger {
	config := zap.NewDevelopmentConfig()
	config.Level.SetLevel(zapcore.InfoLevel)

	logger, err := config.Build()
	if err != nil {
		panic("Failed to setup logger")
	}

	return logger
}

func initSentry() {
	// Sentry
	logger.Info("Initializing sentry")
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		logger.Panic("fail to initialize sentry", zap.Error(err))
	}
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("commute")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)
	initSentry()

	ormDB, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		logger.Panic("connect orm database with error", zap.Error(err))
	}

	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		logger.Panic("create mongo client with error", zap.Error(err))
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		logger.Panic("connect mongo database with error", zap.Error(err))
	}

	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))
	core := store.NewCommuteStore(ormDB, mongoStore)

	movesClient := moves.New(moves.Config{
		ClientID:     viper.GetString("moves.client_id"),
		ClientSecret: viper.GetString("moves.client_secret"),
		APIURL:       viper.GetString("moves.api_url"),
		OAuthURL:     viper.GetString("moves.oauth_url"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	})

	classifierOptions, err := classifier.OptionsFromConfig(viper.GetViper())
	if err != nil {
		logger.Panic("load classifier options with error", zap.Error(err))
	}

	refresher := leaderboard.NewRefresher(core, mongoStore, movesClient, classifier.NewPlaceClassifier(classifierOptions))

	service, err := cadence.BuildCadenceServiceClient(viper.GetString("cadence.conn"))
	if err != nil {
		logger.Panic("connect cadence with error", zap.Error(err))
	}

	scope := tally.NewTestScope(utils.LeaderboardTaskListName, map[string]string{})

	worker := refresh.NewLeaderboardUpdateWorker(
		viper.GetString("cadence.domain"),
		viper.GetDuration("leaderboard.refresh_interval"),
		refresher)
	worker.Register()
	worker.Start(service, logger, scope)
}
