package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/commute-leaderboard/mocks"
)

func TestAuthMiddleware(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockCommuteCore(ctl)

	s := Server{
		store:         core,
		jwtPrivateKey: testJWTKey(t),
	}
	other := Server{jwtPrivateKey: testJWTKey(t)}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.authMiddleware())
	router.Use(s.recognizeAccountMiddleware())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("requester"))
	})

	// no header
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, errorInvalidAuthorizationFormat, decodeError(t, w))

	// signed by another key
	token, _, err := other.issueJWT("7")
	assert.NoError(t, err)
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, errorInvalidToken, decodeError(t, w))

	// unknown account
	core.EXPECT().GetAccount("8").Return(nil, gorm.ErrRecordNotFound)
	token, _, err = s.issueJWT("8")
	assert.NoError(t, err)
	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, errorAccountNotFound, decodeError(t, w))
}

func TestAPIKeyAuthentication(t *testing.T) {
	s := Server{}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.apikeyAuthentication("key"))
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Api-Token", "key")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
