//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"callcenter-gamification-backend/internal/database/models"
	"callcenter-gamification-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// StatsRepositoryTestSuite tests the StatsRepository and RankingRepository
type StatsRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repos         *Repositories
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *StatsRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repos = NewRepositories(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *StatsRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *StatsRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *StatsRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestOperatorCallStats tests aggregates over finalized calls only
func (suite *StatsRepositoryTestSuite) TestOperatorCallStats() {
	op := suite.factories.Operator.Create()
	suite.Require().NoError(suite.repos.Operators.Create(op))

	calls := []*models.Call{
		suite.factories.Call.Finalized(op.ID, 120, testutils.IntPtr(5), true, 55),
		suite.factories.Call.Finalized(op.ID, 60, testutils.IntPtr(3), false, 10),
		suite.factories.Call.Finalized(op.ID, 180, nil, true, 30),
		suite.factories.Call.Create(op.ID),
	}
	for _, c := range calls {
		suite.Require().NoError(suite.repos.Calls.Create(c))
	}

	stats, err := suite.repos.Stats.OperatorCallStats(op.ID)
	suite.NoError(err)
	suite.Equal(int64(3), stats.TotalCalls)
	suite.Equal(int64(2), stats.ResolvedCalls)
	suite.Equal(int64(2), stats.RatedCalls)
	suite.InDelta(120.0, stats.AvgHandleSeconds, 0.001)
	suite.InDelta(4.0, stats.AvgSatisfaction, 0.001)
	suite.Equal(int64(95), stats.PointsFromCalls)
}

// TestOperatorCallStatsEmpty tests that an empty history yields zeros
func (suite *StatsRepositoryTestSuite) TestOperatorCallStatsEmpty() {
	op := suite.factories.Operator.Create()
	suite.Require().NoError(suite.repos.Operators.Create(op))

	stats, err := suite.repos.Stats.OperatorCallStats(op.ID)
	suite.NoError(err)
	suite.Zero(stats.TotalCalls)
	suite.Zero(stats.AvgHandleSeconds)
}

// TestTotalsAndRanking tests window totals feeding the ranking table
func (suite *StatsRepositoryTestSuite) TestTotalsAndRanking() {
	manager := suite.factories.Manager.Create()
	suite.Require().NoError(suite.repos.Managers.Create(manager))
	leader := suite.factories.Operator.WithManager(manager.ID)
	idle := suite.factories.Operator.WithManager(manager.ID)
	outsider := suite.factories.Operator.Create()
	for _, op := range []*models.Operator{leader, idle, outsider} {
		suite.Require().NoError(suite.repos.Operators.Create(op))
	}

	suite.Require().NoError(suite.repos.Calls.Create(suite.factories.Call.Finalized(leader.ID, 60, nil, true, 30)))
	suite.Require().NoError(suite.repos.Calls.Create(suite.factories.Call.Finalized(leader.ID, 60, nil, false, 10)))
	suite.Require().NoError(suite.repos.Calls.Create(suite.factories.Call.Finalized(outsider.ID, 60, nil, false, 10)))

	since := time.Now().Add(-24 * time.Hour)
	team, err := suite.repos.Stats.TeamTotalsSince(manager.ID, since)
	suite.NoError(err)
	suite.Len(team, 2)

	totals, err := suite.repos.Stats.TotalsSince(since)
	suite.NoError(err)
	suite.Len(totals, 3)

	rows := make([]models.Ranking, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, models.Ranking{
			OperatorID:    t.OperatorID,
			WeeklyPoints:  int(t.Points),
			MonthlyPoints: int(t.Points),
			WeeklyCalls:   int(t.Calls),
			MonthlyCalls:  int(t.Calls),
		})
	}
	suite.Require().NoError(suite.repos.Rankings.UpsertMany(rows))
	// a second upsert must update in place
	suite.Require().NoError(suite.repos.Rankings.UpsertMany(rows))

	entries, err := suite.repos.Rankings.GetOrdered(RankingWeekly, 10)
	suite.NoError(err)
	suite.Require().Len(entries, 3)
	suite.Equal(leader.ID, entries[0].OperatorID)
	suite.Equal(1, entries[0].Position)
	suite.Equal(40, entries[0].Points)
	suite.Equal(2, entries[0].Calls)
}

// TestWeeklyTieBrokenByMonthlyPoints tests that a weekly tie orders by monthly
// points before name
func (suite *StatsRepositoryTestSuite) TestWeeklyTieBrokenByMonthlyPoints() {
	ann := suite.factories.Operator.Create()
	ann.Name = "Ann"
	zed := suite.factories.Operator.Create()
	zed.Name = "Zed"
	for _, op := range []*models.Operator{ann, zed} {
		suite.Require().NoError(suite.repos.Operators.Create(op))
	}

	suite.Require().NoError(suite.repos.Rankings.UpsertMany([]models.Ranking{
		{OperatorID: ann.ID, WeeklyPoints: 50, MonthlyPoints: 60, Position: 2},
		{OperatorID: zed.ID, WeeklyPoints: 50, MonthlyPoints: 100, Position: 1},
	}))

	entries, err := suite.repos.Rankings.GetOrdered(RankingWeekly, 10)
	suite.NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal(zed.ID, entries[0].OperatorID)
	suite.Equal(1, entries[0].Position)
	suite.Equal(ann.ID, entries[1].OperatorID)
	suite.Equal(2, entries[1].Position)

	stored, err := suite.repos.Rankings.GetByOperatorID(ann.ID)
	suite.NoError(err)
	suite.Equal(entries[1].Position, stored.Position)
}

// TestStatsRepositoryTestSuite runs the test suite
func TestStatsRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(StatsRepositoryTestSuite))
}
