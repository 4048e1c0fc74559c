package api

import (
	"github.com/bitmark-inc/commute-leaderboard/store"
	"github.com/bitmark-inc/commute-leaderboard/utils"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrAccountTaken.Error(),
		1101: "account not found",

		1200: "moves authorization failed",
		1201: "moves service unavailable",

		1300: "leaderboard record not found",
		1301: utils.ErrInvalidPeriod.Error(),
		1302: utils.ErrFuturePeriod.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken    = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)

	errorMovesAuthorization = errorJSON(1200)
	errorMovesUnavailable   = errorJSON(1201)

	errorLeaderboardNotFound = errorJSON(1300)
	errorInvalidPeriod       = errorJSON(1301)
	errorFuturePeriod        = errorJSON(1302)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
