package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/commute-leaderboard/external/moves"
	"github.com/bitmark-inc/commute-leaderboard/leaderboard"
	"github.com/bitmark-inc/commute-leaderboard/schema"
	"github.com/bitmark-inc/commute-leaderboard/store"
	"github.com/bitmark-inc/commute-leaderboard/utils"
)

const (
	defaultLeaderboardLimit = 50
	maxLeaderboardLimit     = 500
)

var leaderboardColumns = []string{
	"rank", "name", "distance", "duration", "speed",
	"to_work", "from_work", "commutes", "rate",
}

// leaderboardRow is a ranked entry without the account it belongs to
type leaderboardRow struct {
	Rank int `json:"rank"`
	schema.LeaderboardEntry
}

// periodParam reads the period query, which defaults to the running month
// in the given location
func periodParam(c *gin.Context, loc *time.Location) (string, bool) {
	period := c.Query("period")
	if period == "" {
		return utils.CurrentPeriod(time.Now().In(loc)), true
	}

	if _, err := utils.ParsePeriod(period, loc); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidPeriod)
		return "", false
	}

	return period, true
}

func accountFromContext(c *gin.Context) (*schema.Account, bool) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	}
	return account, ok
}

// myLeaderboardRecord returns the stored record of the requester
func (s *Server) myLeaderboardRecord(c *gin.Context) {
	account, ok := accountFromContext(c)
	if !ok {
		return
	}

	period, ok := periodParam(c, utils.LocationOrUTC(account.Profile.Timezone))
	if !ok {
		return
	}

	record, err := s.mongoStore.GetLeaderboardRecord(account.AccountNumber, period)
	if err != nil {
		if err == store.ErrLeaderboardRecordNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorLeaderboardNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": record})
}

// refreshMyLeaderboardRecord computes the record of the requester right away
func (s *Server) refreshMyLeaderboardRecord(c *gin.Context) {
	account, ok := accountFromContext(c)
	if !ok {
		return
	}

	period, ok := periodParam(c, utils.LocationOrUTC(account.Profile.Timezone))
	if !ok {
		return
	}

	record, err := s.refresher.Refresh(c, account.AccountNumber, period)
	if err != nil {
		switch err.(type) {
		case *moves.APIError:
			abortWithMovesError(c, err)
			return
		}

		switch err {
		case utils.ErrFuturePeriod:
			abortWithEncoding(c, http.StatusBadRequest, errorFuturePeriod)
		case utils.ErrInvalidPeriod:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidPeriod)
		case moves.ErrNoAccessToken:
			abortWithEncoding(c, http.StatusUnauthorized, errorMovesAuthorization, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": record})
}

// scheduleMyLeaderboardRecord enqueues a refresh of the requester
func (s *Server) scheduleMyLeaderboardRecord(c *gin.Context) {
	account, ok := accountFromContext(c)
	if !ok {
		return
	}

	period, ok := periodParam(c, utils.LocationOrUTC(account.Profile.Timezone))
	if !ok {
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: utils.TaskRefreshLeaderboard,
		Args: []tasks.Arg{
			{Type: "string", Value: account.AccountNumber},
			{Type: "string", Value: period},
		},
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"result": "OK"})
}

// getLeaderboard is the public ranking of a period
func (s *Server) getLeaderboard(c *gin.Context) {
	period, ok := periodParam(c, time.UTC)
	if !ok {
		return
	}

	limit := int64(defaultLeaderboardLimit)
	if l := c.Query("limit"); l != "" {
		n, err := strconv.ParseInt(l, 10, 64)
		if err != nil || n <= 0 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		limit = n
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	records, err := s.mongoStore.ListLeaderboard(period, limit)
	if shouldInterupt(err, c) {
		return
	}

	rows := make([]leaderboardRow, 0, len(records))
	for _, r := range leaderboard.Rank(records) {
		rows = append(rows, leaderboardRow{
			Rank:             r.Rank,
			LeaderboardEntry: r.LeaderboardEntry,
		})
	}

	loc := utils.NewLocalizer(c.Query("lang"), c.GetHeader("Accept-Language"))
	columns := make(map[string]string, len(leaderboardColumns))
	for _, col := range leaderboardColumns {
		columns[col] = utils.Localize(loc, "leaderboard.columns."+col, nil)
	}

	c.JSON(http.StatusOK, gin.H{
		"title":   utils.Localize(loc, "leaderboard.title", map[string]interface{}{"Period": period}),
		"period":  period,
		"columns": columns,
		"result":  rows,
	})
}

// adminRefreshLeaderboard enqueues a refresh of every account
func (s *Server) adminRefreshLeaderboard(c *gin.Context) {
	period, ok := periodParam(c, time.UTC)
	if !ok {
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: utils.TaskRefreshAllLeaderboards,
		Args: []tasks.Arg{
			{Type: "string", Value: period},
		},
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"result": "OK"})
}
