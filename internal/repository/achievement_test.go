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

// AchievementRepositoryTestSuite tests the AchievementRepository
type AchievementRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AchievementRepository
	operators     *OperatorRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *AchievementRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAchievementRepository(suite.baseTestSuite.DB)
	suite.operators = NewOperatorRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AchievementRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AchievementRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AchievementRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestUnlockIsIdempotent tests that a second unlock inserts nothing
func (suite *AchievementRepositoryTestSuite) TestUnlockIsIdempotent() {
	op := suite.factories.Operator.Create()
	suite.Require().NoError(suite.operators.Create(op))
	achievement := suite.factories.Achievement.Create(models.ConditionCallCount, 1, 10)
	suite.Require().NoError(suite.repo.Create(achievement))

	inserted, err := suite.repo.Unlock(op.ID, achievement.ID, time.Now())
	suite.NoError(err)
	suite.True(inserted)

	inserted, err = suite.repo.Unlock(op.ID, achievement.ID, time.Now())
	suite.NoError(err)
	suite.False(inserted)

	count, err := suite.repo.CountUnlocked(op.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestLockedAndStatus tests the locked list and unlock annotations
func (suite *AchievementRepositoryTestSuite) TestLockedAndStatus() {
	op := suite.factories.Operator.Create()
	suite.Require().NoError(suite.operators.Create(op))
	first := suite.factories.Achievement.Create(models.ConditionCallCount, 1, 10)
	second := suite.factories.Achievement.Create(models.ConditionPoints, 500, 50)
	suite.Require().NoError(suite.repo.Create(first))
	suite.Require().NoError(suite.repo.Create(second))

	_, err := suite.repo.Unlock(op.ID, first.ID, time.Now())
	suite.Require().NoError(err)

	locked, err := suite.repo.GetLockedForOperator(op.ID)
	suite.NoError(err)
	suite.Require().Len(locked, 1)
	suite.Equal(second.ID, locked[0].ID)

	all, err := suite.repo.GetAllWithStatus(op.ID)
	suite.NoError(err)
	suite.Require().Len(all, 2)
	for _, a := range all {
		if a.ID == first.ID {
			suite.True(a.Unlocked)
			suite.NotNil(a.UnlockedAt)
		} else {
			suite.False(a.Unlocked)
			suite.Nil(a.UnlockedAt)
		}
	}
}

// TestAchievementRepositoryTestSuite runs the test suite
func TestAchievementRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AchievementRepositoryTestSuite))
}
