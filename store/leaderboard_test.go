package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/commute-leaderboard/schema"
)

var (
	leaderboardRecordAda = schema.LeaderboardRecord{
		AccountNumber: "ada",
		Period:        "2014-03",
		From:          "20140301",
		To:            "20140331",
		LeaderboardEntry: schema.LeaderboardEntry{
			Name:      "Ada Lovelace",
			Distance:  42.1,
			Duration:  "03:10:00",
			NCommutes: 12,
		},
	}
	leaderboardRecordCharles = schema.LeaderboardRecord{
		AccountNumber: "charles",
		Period:        "2014-03",
		LeaderboardEntry: schema.LeaderboardEntry{
			Name:     "Charles Babbage",
			Distance: 10.5,
		},
	}
	leaderboardRecordCharlesFeb = schema.LeaderboardRecord{
		AccountNumber: "charles",
		Period:        "2014-02",
		LeaderboardEntry: schema.LeaderboardEntry{
			Name:     "Charles Babbage",
			Distance: 99.9,
		},
	}
)

type LeaderboardTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewLeaderboardTestSuite(connURI, dbName string) *LeaderboardTestSuite {
	return &LeaderboardTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *LeaderboardTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Skip("mongo test database is not configured")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)
}

// SetupTest makes sure every test runs with a clean and indexed collection
func (s *LeaderboardTestSuite) SetupTest() {
	if err := s.testDatabase.Drop(context.Background()); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

func (s *LeaderboardTestSuite) TearDownSuite() {
	if s.mongoClient != nil {
		_ = s.testDatabase.Drop(context.Background())
		_ = s.mongoClient.Disconnect(context.Background())
	}
}

func (s *LeaderboardTestSuite) TestSaveAndGetLeaderboardRecord() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.NoError(store.SaveLeaderboardRecord(leaderboardRecordAda))

	record, err := store.GetLeaderboardRecord("ada", "2014-03")
	s.NoError(err)
	s.Equal("Ada Lovelace", record.Name)
	s.Equal(42.1, record.Distance)
	s.Equal("03:10:00", record.Duration)
	s.Equal("20140331", record.To)
	s.False(record.UpdatedAt.IsZero())

	_, err = store.GetLeaderboardRecord("ada", "2014-04")
	s.Equal(ErrLeaderboardRecordNotFound, err)
}

// TestSaveLeaderboardRecordReplaces checks a period keeps one record per account
func (s *LeaderboardTestSuite) TestSaveLeaderboardRecordReplaces() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.NoError(store.SaveLeaderboardRecord(leaderboardRecordAda))

	updated := leaderboardRecordAda
	updated.Distance = 50.2
	s.NoError(store.SaveLeaderboardRecord(updated))

	count, err := s.testDatabase.Collection(schema.LeaderboardCollection).CountDocuments(context.Background(), bson.M{"account_number": "ada"})
	s.NoError(err)
	s.Equal(int64(1), count)

	record, err := store.GetLeaderboardRecord("ada", "2014-03")
	s.NoError(err)
	s.Equal(50.2, record.Distance)
}

func (s *LeaderboardTestSuite) TestListLeaderboard() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.NoError(store.SaveLeaderboardRecord(leaderboardRecordCharles))
	s.NoError(store.SaveLeaderboardRecord(leaderboardRecordAda))
	s.NoError(store.SaveLeaderboardRecord(leaderboardRecordCharlesFeb))

	records, err := store.ListLeaderboard("2014-03", 0)
	s.NoError(err)
	s.Len(records, 2)
	s.Equal("ada", records[0].AccountNumber)
	s.Equal("charles", records[1].AccountNumber)

	records, err = store.ListLeaderboard("2014-03", 1)
	s.NoError(err)
	s.Len(records, 1)

	records, err = store.ListLeaderboard("2013-01", 0)
	s.NoError(err)
	s.Empty(records)
}

func (s *LeaderboardTestSuite) TestDeleteLeaderboardRecords() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.NoError(store.SaveLeaderboardRecord(leaderboardRecordCharles))
	s.NoError(store.SaveLeaderboardRecord(leaderboardRecordCharlesFeb))
	s.NoError(store.SaveLeaderboardRecord(leaderboardRecordAda))

	s.NoError(store.DeleteLeaderboardRecords("charles"))

	records, err := store.ListLeaderboard("2014-02", 0)
	s.NoError(err)
	s.Empty(records)

	records, err = store.ListLeaderboard("2014-03", 0)
	s.NoError(err)
	s.Len(records, 1)
}

func TestLeaderboardTestSuite(t *testing.T) {
	suite.Run(t, NewLeaderboardTestSuite(os.Getenv("COMMUTE_TEST_MONGO"), "test-commute"))
}
