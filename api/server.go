package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/commute-leaderboard/external/cadence"
	"github.com/bitmark-inc/commute-leaderboard/external/moves"
	"github.com/bitmark-inc/commute-leaderboard/leaderboard"
	"github.com/bitmark-inc/commute-leaderboard/logmodule"
	"github.com/bitmark-inc/commute-leaderboard/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// TaskSender enqueues background jobs
type TaskSender interface {
	SendTask(signature *tasks.Signature) (*result.AsyncResult, error)
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.CommuteCore
	mongoStore store.MongoStore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// External services
	movesClient moves.Moves
	refresher   *leaderboard.Refresher

	// job pool enqueuer
	background TaskSender

	// cadence client, optional
	cadenceClient cadence.WorkflowStarter
}

// NewServer new instance of server
func NewServer(
	core store.CommuteCore,
	mongoStore store.MongoStore,
	movesClient moves.Moves,
	refresher *leaderboard.Refresher,
	background TaskSender,
	cadenceClient cadence.WorkflowStarter,
	jwtKey *rsa.PrivateKey) *Server {
	return &Server{
		store:         core,
		mongoStore:    mongoStore,
		movesClient:   movesClient,
		refresher:     refresher,
		background:    background,
		cadenceClient: cadenceClient,
		jwtPrivateKey: jwtKey,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)
	apiRoute.POST("/auth", s.requestJWT)

	apiRoute.POST("/accounts", s.accountRegister)

	accountRoute := apiRoute.Group("/accounts/me")
	accountRoute.Use(s.authMiddleware())
	accountRoute.Use(s.recognizeAccountMiddleware())
	{
		accountRoute.GET("", s.accountDetail)
		accountRoute.DELETE("", s.accountDelete)

		accountRoute.GET("/leaderboard", s.myLeaderboardRecord)
		accountRoute.POST("/leaderboard/refresh", s.refreshMyLeaderboardRecord)
		accountRoute.POST("/leaderboard/schedule", s.scheduleMyLeaderboardRecord)
	}

	leaderboardRoute := r.Group("/leaderboard")
	leaderboardRoute.Use(logmodule.Ginrus("Leaderboard"))
	leaderboardRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	{
		leaderboardRoute.GET("", s.getLeaderboard)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/refresh-leaderboard", s.adminRefreshLeaderboard)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"moves": map[string]interface{}{
				"oauth_url": s.movesClient.BuildOAuthURL(viper.GetString("moves.redirect_uri"), false, ""),
				"app_url":   s.movesClient.BuildOAuthURL("", true, ""),
			},
			"system_version": "Commute Leaderboard 0.1",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
