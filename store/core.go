package store

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/bitmark-inc/commute-leaderboard/schema"
)

var (
	ErrAccountTaken = fmt.Errorf("the account has been registered")
)

// CommuteCore - main datastore of accounts
type CommuteCore interface {
	Ping() error

	// Account
	CreateAccount(accountNumber string, profile schema.AccountProfile) (*schema.Account, error)
	GetAccount(accountNumber string) (*schema.Account, error)
	ListAccounts() ([]schema.Account, error)
	UpdateAccountToken(accountNumber, accessToken, refreshToken string, expiry time.Time) error
	DeleteAccount(accountNumber string) error
}

// CommuteStore is an implementation of CommuteCore
type CommuteStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewCommuteStore(ormDB *gorm.DB, mongo MongoStore) *CommuteStore {
	return &CommuteStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *CommuteStore) Ping() error {
	if err := s.ormDB.DB().Ping(); err != nil {
		return err
	}

	if s.mongo != nil {
		return s.mongo.Ping()
	}

	return nil
}
