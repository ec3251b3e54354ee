//go:build integration
// +build integration

package main

import (
	"encoding/json"
	"os"
	"testing"

	"callcenter-gamification-backend/internal/database/models"
	apperrors "callcenter-gamification-backend/internal/errors"
	"callcenter-gamification-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

func TestMain(m *testing.M) {
	os.Exit(testutils.RunIntegration(m, "seed"))
}

// SeedLoaderTestSuite loads data/initial into a fresh database
type SeedLoaderTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
}

// SetupSuite runs before all tests in the suite
func (suite *SeedLoaderTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
}

// TearDownSuite runs after all tests in the suite
func (suite *SeedLoaderTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SeedLoaderTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *SeedLoaderTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *SeedLoaderTestSuite) count(model interface{}) int64 {
	var n int64
	suite.Require().NoError(suite.baseTestSuite.DB.Model(model).Count(&n).Error)
	return n
}

// TestLoadIsIdempotent tests that a second load keeps one row per email and title
func (suite *SeedLoaderTestSuite) TestLoadIsIdempotent() {
	db := suite.baseTestSuite.DB
	suite.Require().NoError(loadDataFromYAMLFiles(db, "../data/initial"))
	suite.Require().NoError(loadDataFromYAMLFiles(db, "../data/initial"))

	suite.Equal(int64(2), suite.count(&models.Manager{}))
	suite.Equal(int64(5), suite.count(&models.Operator{}))
	suite.Equal(int64(4), suite.count(&models.Mission{}))
	suite.Equal(int64(7), suite.count(&models.Achievement{}))
	suite.Equal(int64(4), suite.count(&models.Reward{}))

	var ana models.Operator
	suite.Require().NoError(db.Where("email = ?", "ana.souza@callcenter.local").First(&ana).Error)
	suite.Require().NotNil(ana.ManagerID)
	suite.Equal(models.OperatorStatusOffline, ana.Status)
	suite.NotEqual("", ana.PasswordHash)
}

// TestRewardMetadata tests that YAML metadata lands in the jsonb column
func (suite *SeedLoaderTestSuite) TestRewardMetadata() {
	db := suite.baseTestSuite.DB
	suite.Require().NoError(loadDataFromYAMLFiles(db, "../data/initial"))

	var headset models.Reward
	suite.Require().NoError(db.Where("title = ?", "Fone com cancelamento de ruido").First(&headset).Error)
	var metadata map[string]interface{}
	suite.Require().NoError(json.Unmarshal(headset.Metadata, &metadata))
	suite.Equal("Jabra", metadata["marca"])
	suite.Equal(float64(12), metadata["garantia_meses"])

	var coffee models.Reward
	suite.Require().NoError(db.Where("title = ?", "Vale cafe").First(&coffee).Error)
	suite.Empty(coffee.Metadata)
}

// TestTakenEmail tests that an existing email is reported as already present
func (suite *SeedLoaderTestSuite) TestTakenEmail() {
	db := suite.baseTestSuite.DB
	manager := ManagerData{Name: "Carla", Email: "carla@callcenter.local", Password: "gestor123"}

	firstID, created, err := createManager(db, manager)
	suite.Require().NoError(err)
	suite.True(created)

	againID, created, err := createManager(db, manager)
	suite.Require().NoError(err)
	suite.False(created)
	suite.Equal(firstID, againID)

	err = insertAccount(db, &models.Operator{Name: "Ana", Email: "ana@callcenter.local", PasswordHash: "x"}, apperrors.ErrOperatorExists)
	suite.Require().NoError(err)
	err = insertAccount(db, &models.Operator{Name: "Ana", Email: "ana@callcenter.local", PasswordHash: "x"}, apperrors.ErrOperatorExists)
	suite.ErrorIs(err, apperrors.ErrOperatorExists)

	created, err = createOperator(db, OperatorData{Name: "Ana", Email: "ana@callcenter.local", Password: "operador123"}, nil)
	suite.NoError(err)
	suite.False(created)
}

// TestSeedLoaderTestSuite runs the test suite
func TestSeedLoaderTestSuite(t *testing.T) {
	suite.Run(t, new(SeedLoaderTestSuite))
}
