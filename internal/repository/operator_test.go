//go:build integration
// +build integration

package repository

import (
	"testing"

	"callcenter-gamification-backend/internal/database/models"
	"callcenter-gamification-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OperatorRepositoryTestSuite tests the OperatorRepository
type OperatorRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OperatorRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OperatorRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewOperatorRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *OperatorRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OperatorRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OperatorRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *OperatorRepositoryTestSuite) createOperator(op *models.Operator) *models.Operator {
	suite.Require().NoError(suite.repo.Create(op))
	return op
}

// TestCreateAndGet tests creating an operator and reading it back
func (suite *OperatorRepositoryTestSuite) TestCreateAndGet() {
	op := suite.createOperator(suite.factories.Operator.Create())

	found, err := suite.repo.GetByID(op.ID)
	suite.NoError(err)
	suite.Equal(op.Email, found.Email)
	suite.Equal(1, found.Level)
	suite.Equal(100, found.NextLevelXP)

	byEmail, err := suite.repo.GetByEmail(op.Email)
	suite.NoError(err)
	suite.Equal(op.ID, byEmail.ID)
}

// TestCreateDuplicateEmail tests the unique email constraint
func (suite *OperatorRepositoryTestSuite) TestCreateDuplicateEmail() {
	first := suite.createOperator(suite.factories.Operator.Create())

	second := suite.factories.Operator.Create()
	second.Email = first.Email
	err := suite.repo.Create(second)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByIDNotFound tests retrieving a missing operator
func (suite *OperatorRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestTransitionStatus tests the conditional status update
func (suite *OperatorRepositoryTestSuite) TestTransitionStatus() {
	op := suite.createOperator(suite.factories.Operator.Create())

	changed, err := suite.repo.TransitionStatus(op.ID, models.OperatorStatusAwaitingCall, models.OperatorStatusInCall)
	suite.NoError(err)
	suite.True(changed)

	// second attempt finds the operator already in a call
	changed, err = suite.repo.TransitionStatus(op.ID, models.OperatorStatusAwaitingCall, models.OperatorStatusInCall)
	suite.NoError(err)
	suite.False(changed)

	found, err := suite.repo.GetByID(op.ID)
	suite.NoError(err)
	suite.Equal(models.OperatorStatusInCall, found.Status)
}

// TestAddPoints tests that credits raise both points and XP
func (suite *OperatorRepositoryTestSuite) TestAddPoints() {
	op := suite.createOperator(suite.factories.Operator.Create())

	suite.NoError(suite.repo.AddPoints(op.ID, 55))
	suite.NoError(suite.repo.AddPoints(op.ID, 10))

	found, err := suite.repo.GetByID(op.ID)
	suite.NoError(err)
	suite.Equal(65, found.TotalPoints)
	suite.Equal(65, found.CurrentXP)

	err = suite.repo.AddPoints(uuid.New(), 10)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDebitPoints tests that debits never overdraw the balance
func (suite *OperatorRepositoryTestSuite) TestDebitPoints() {
	op := suite.createOperator(suite.factories.Operator.WithPoints(50))

	ok, err := suite.repo.DebitPoints(op.ID, 60)
	suite.NoError(err)
	suite.False(ok)

	ok, err = suite.repo.DebitPoints(op.ID, 50)
	suite.NoError(err)
	suite.True(ok)

	found, err := suite.repo.GetByID(op.ID)
	suite.NoError(err)
	suite.Equal(0, found.TotalPoints)
	suite.Equal(0, found.CurrentXP)
}

// TestGetByManagerID tests listing a manager's team
func (suite *OperatorRepositoryTestSuite) TestGetByManagerID() {
	manager := suite.factories.Manager.Create()
	suite.Require().NoError(NewManagerRepository(suite.baseTestSuite.DB).Create(manager))

	suite.createOperator(suite.factories.Operator.WithManager(manager.ID))
	suite.createOperator(suite.factories.Operator.WithManager(manager.ID))
	suite.createOperator(suite.factories.Operator.Create())

	team, err := suite.repo.GetByManagerID(manager.ID)
	suite.NoError(err)
	suite.Len(team, 2)
}

// TestOperatorRepositoryTestSuite runs the test suite
func TestOperatorRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OperatorRepositoryTestSuite))
}
