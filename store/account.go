package store

import (
	"time"

	"github.com/lib/pq"

	"github.com/bitmark-inc/commute-leaderboard/schema"
)

const uniqueViolation = pq.ErrorCode("23505")

// CreateAccount is to register an account with its Moves profile and tokens
func (s *CommuteStore) CreateAccount(accountNumber string, profile schema.AccountProfile) (*schema.Account, error) {
	profile.AccountNumber = accountNumber
	a := schema.Account{
		AccountNumber: accountNumber,
		Profile:       profile,
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAccountTaken
		}
		return nil, err
	}

	return &a, nil
}

// GetAccount returns an account instance of a given account number
func (s *CommuteStore) GetAccount(accountNumber string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Preload("Profile").Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// ListAccounts returns all registered accounts
func (s *CommuteStore) ListAccounts() ([]schema.Account, error) {
	var accounts []schema.Account
	if err := s.ormDB.Preload("Profile").Order("created_at").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// UpdateAccountToken replaces the Moves tokens of an account
func (s *CommuteStore) UpdateAccountToken(accountNumber, accessToken, refreshToken string, expiry time.Time) error {
	var a schema.Account
	if err := s.ormDB.Preload("Profile").Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		return err
	}

	a.Profile.AccessToken = accessToken
	a.Profile.RefreshToken = refreshToken
	a.Profile.TokenExpiry = expiry

	return s.ormDB.Save(&a.Profile).Error
}

// DeleteAccount removes an account and its leaderboard records permanently
func (s *CommuteStore) DeleteAccount(accountNumber string) error {
	if err := s.ormDB.Delete(schema.Account{}, "account_number = ?", accountNumber).Error; err != nil {
		return err
	}

	if err := s.ormDB.Delete(schema.AccountProfile{}, "account_number = ?", accountNumber).Error; err != nil {
		return err
	}

	if s.mongo != nil {
		return s.mongo.DeleteLeaderboardRecords(accountNumber)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	if e, ok := err.(*pq.Error); ok {
		return e.Code == uniqueViolation
	}
	return false
}
