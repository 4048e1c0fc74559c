package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/commute-leaderboard/schema"
)

var (
	ErrLeaderboardRecordNotFound = fmt.Errorf("leaderboard record not found")
)

// Leaderboard - leaderboard records of accounts by period
type Leaderboard interface {
	SaveLeaderboardRecord(record schema.LeaderboardRecord) error
	GetLeaderboardRecord(accountNumber, period string) (*schema.LeaderboardRecord, error)
	ListLeaderboard(period string, limit int64) ([]schema.LeaderboardRecord, error)
	DeleteLeaderboardRecords(accountNumber string) error
}

// SaveLeaderboardRecord replaces the record of the same account and period
func (m *mongoDB) SaveLeaderboardRecord(record schema.LeaderboardRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.LeaderboardCollection)

	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = time.Now().UTC()
	}

	query := bson.M{
		"account_number": record.AccountNumber,
		"period":         record.Period,
	}

	if _, err := c.UpdateOne(ctx, query, bson.M{"$set": record}, options.Update().SetUpsert(true)); err != nil {
		log.WithFields(log.Fields{
			"prefix":         mongoLogPrefix,
			"account_number": record.AccountNumber,
			"period":         record.Period,
			"error":          err,
		}).Error("save leaderboard record")
		return err
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("leaderboard record saved, account: %s, period: %s", record.AccountNumber, record.Period)

	return nil
}

// GetLeaderboardRecord returns the record of an account in a period
func (m *mongoDB) GetLeaderboardRecord(accountNumber, period string) (*schema.LeaderboardRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.LeaderboardCollection)

	var record schema.LeaderboardRecord
	if err := c.FindOne(ctx, bson.M{
		"account_number": accountNumber,
		"period":         period,
	}).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrLeaderboardRecordNotFound
		}
		return nil, err
	}

	return &record, nil
}

// ListLeaderboard returns the records of a period with the longest distance first
func (m *mongoDB) ListLeaderboard(period string, limit int64) ([]schema.LeaderboardRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.LeaderboardCollection)

	opts := options.Find().SetSort(bson.D{
		{Key: "distance", Value: -1},
		{Key: "n_commutes", Value: -1},
	})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cur, err := c.Find(ctx, bson.M{"period": period}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	records := make([]schema.LeaderboardRecord, 0)
	for cur.Next(ctx) {
		var r schema.LeaderboardRecord
		if err := cur.Decode(&r); err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, cur.Err()
}

// DeleteLeaderboardRecords removes all records of an account
func (m *mongoDB) DeleteLeaderboardRecords(accountNumber string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.LeaderboardCollection)
	_, err := c.DeleteMany(ctx, bson.M{"account_number": accountNumber})
	return err
}
