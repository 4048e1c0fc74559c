package store

import (
	"os"
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/stretchr/testify/suite"

	"github.com/bitmark-inc/commute-leaderboard/schema"
)

type AccountTestSuite struct {
	suite.Suite
	connString string
	ormDB      *gorm.DB
}

func NewAccountTestSuite(connString string) *AccountTestSuite {
	return &AccountTestSuite{
		connString: connString,
	}
}

func (s *AccountTestSuite) SetupSuite() {
	if s.connString == "" {
		s.T().Skip("postgres test database is not configured")
	}

	db, err := gorm.Open("postgres", s.connString)
	if err != nil {
		s.T().Fatalf("open postgres with error: %s", err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		s.T().Fatal(err)
	}

	s.ormDB = db
}

// SetupTest makes sure every test runs with empty account tables
func (s *AccountTestSuite) SetupTest() {
	s.ormDB.DropTableIfExists(&schema.Account{}, &schema.AccountProfile{})
	if err := s.ormDB.AutoMigrate(&schema.Account{}, &schema.AccountProfile{}).Error; err != nil {
		s.T().Fatal(err)
	}
}

func (s *AccountTestSuite) TearDownSuite() {
	if s.ormDB != nil {
		s.ormDB.DropTableIfExists(&schema.Account{}, &schema.AccountProfile{})
		_ = s.ormDB.Close()
	}
}

func (s *AccountTestSuite) TestCreateAndGetAccount() {
	store := NewCommuteStore(s.ormDB, nil)

	a, err := store.CreateAccount("7", schema.AccountProfile{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		FirstDate:   "20121211",
		Timezone:    "Europe/London",
		AccessToken: "access",
	})
	s.NoError(err)
	s.Equal("7", a.AccountNumber)
	s.Equal("7", a.Profile.AccountNumber)

	a, err = store.GetAccount("7")
	s.NoError(err)
	s.Equal("Ada", a.Profile.FirstName)
	s.Equal("20121211", a.Profile.FirstDate)
	s.Equal("access", a.Profile.AccessToken)

	_, err = store.GetAccount("8")
	s.True(gorm.IsRecordNotFoundError(err))
}

func (s *AccountTestSuite) TestCreateAccountTwice() {
	store := NewCommuteStore(s.ormDB, nil)

	_, err := store.CreateAccount("7", schema.AccountProfile{FirstName: "Ada"})
	s.NoError(err)

	_, err = store.CreateAccount("7", schema.AccountProfile{FirstName: "Ada"})
	s.Equal(ErrAccountTaken, err)
}

func (s *AccountTestSuite) TestUpdateAccountToken() {
	store := NewCommuteStore(s.ormDB, nil)

	_, err := store.CreateAccount("7", schema.AccountProfile{FirstName: "Ada", AccessToken: "old"})
	s.NoError(err)

	expiry := time.Date(2014, 9, 1, 0, 0, 0, 0, time.UTC)
	s.NoError(store.UpdateAccountToken("7", "new", "refresh", expiry))

	a, err := store.GetAccount("7")
	s.NoError(err)
	s.Equal("new", a.Profile.AccessToken)
	s.Equal("refresh", a.Profile.RefreshToken)
	s.True(expiry.Equal(a.Profile.TokenExpiry))
}

func (s *AccountTestSuite) TestListAndDeleteAccounts() {
	store := NewCommuteStore(s.ormDB, nil)

	_, err := store.CreateAccount("7", schema.AccountProfile{FirstName: "Ada"})
	s.NoError(err)
	_, err = store.CreateAccount("8", schema.AccountProfile{FirstName: "Charles"})
	s.NoError(err)

	accounts, err := store.ListAccounts()
	s.NoError(err)
	s.Len(accounts, 2)
	s.Equal("7", accounts[0].AccountNumber)
	s.Equal("Charles", accounts[1].Profile.FirstName)

	s.NoError(store.DeleteAccount("7"))

	accounts, err = store.ListAccounts()
	s.NoError(err)
	s.Len(accounts, 1)
	s.Equal("8", accounts[0].AccountNumber)
}

func TestAccountTestSuite(t *testing.T) {
	suite.Run(t, NewAccountTestSuite(os.Getenv("COMMUTE_TEST_POSTGRES")))
}
