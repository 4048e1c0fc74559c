package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/commute-leaderboard/schema"
	"github.com/bitmark-inc/commute-leaderboard/store"
	"github.com/bitmark-inc/commute-leaderboard/utils"
)

// accountRegister is the API for register a new account. The Moves profile
// carries no names, so the names on the leaderboard come with the request.
func (s *Server) accountRegister(c *gin.Context) {
	logger := log.WithField("api", "accountRegister")

	var params struct {
		Code      string `json:"code" binding:"required"`
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	grant, err := s.exchangeMovesCode(c, params.Code)
	if err != nil {
		logger.WithError(err).Error("exchange moves authorization code")
		abortWithMovesError(c, err)
		return
	}

	a, err := s.store.CreateAccount(grant.accountNumber, schema.AccountProfile{
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		FirstDate:    grant.user.Profile.FirstDate,
		Timezone:     grant.user.Profile.CurrentTimeZone.ID,
		AccessToken:  grant.token.AccessToken,
		RefreshToken: grant.token.RefreshToken,
		TokenExpiry:  grant.token.Expiry(time.Now()),
	})
	if err != nil {
		if err == store.ErrAccountTaken {
			abortWithEncoding(c, http.StatusForbidden, errorAccountTaken)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	// periodic refreshes are best effort, the account is usable without them
	if s.cadenceClient != nil {
		if err := utils.TriggerLeaderboardUpdate(c, s.cadenceClient, []string{a.AccountNumber}); err != nil {
			logger.WithError(err).Warn("start leaderboard update workflow")
		}
	}

	tokenString, exp, err := s.issueJWT(a.AccountNumber)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":    a,
		"jwt_token": tokenString,
		"expire_in": int64(time.Until(exp).Seconds()),
	})
}

// accountDetail is the API to query an account
func (s *Server) accountDetail(c *gin.Context) {
	a := c.MustGet("account")
	account, ok := a.(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": account,
	})
}

// accountDelete is the API to remove an account from our service
func (s *Server) accountDelete(c *gin.Context) {
	accountNumber := c.GetString("requester")

	if err := s.store.DeleteAccount(accountNumber); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
