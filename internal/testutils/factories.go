package testutils

import (
	"fmt"
	"time"

	"callcenter-gamification-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// TestPassword is the plain password behind every factory-made account
const TestPassword = "senha-teste-123"

var testPasswordHash = func() string {
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}()

func newBase() models.BaseModel {
	now := time.Now()
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ManagerFactory provides methods to create test Manager data
type ManagerFactory struct{}

// NewManagerFactory creates a new ManagerFactory
func NewManagerFactory() *ManagerFactory {
	return &ManagerFactory{}
}

// Create creates a test Manager with default values
func (f *ManagerFactory) Create() *models.Manager {
	base := newBase()
	return &models.Manager{
		BaseModel:    base,
		Name:         "Gestor Teste",
		Email:        fmt.Sprintf("gestor.%s@test.com", base.ID.String()[:8]),
		PasswordHash: testPasswordHash,
		Department:   "Atendimento",
		IsActive:     true,
	}
}

// OperatorFactory provides methods to create test Operator data
type OperatorFactory struct{}

// NewOperatorFactory creates a new OperatorFactory
func NewOperatorFactory() *OperatorFactory {
	return &OperatorFactory{}
}

// Create creates a test Operator awaiting a call with no points
func (f *OperatorFactory) Create() *models.Operator {
	base := newBase()
	return &models.Operator{
		BaseModel:    base,
		Name:         "Operador " + base.ID.String()[:6],
		Email:        fmt.Sprintf("operador.%s@test.com", base.ID.String()[:8]),
		PasswordHash: testPasswordHash,
		Level:        1,
		CurrentXP:    0,
		NextLevelXP:  100,
		TotalPoints:  0,
		Status:       models.OperatorStatusAwaitingCall,
		IsActive:     true,
	}
}

// WithManager creates an operator supervised by managerID
func (f *OperatorFactory) WithManager(managerID uuid.UUID) *models.Operator {
	op := f.Create()
	op.ManagerID = &managerID
	return op
}

// WithStatus creates an operator in the given status
func (f *OperatorFactory) WithStatus(status models.OperatorStatus) *models.Operator {
	op := f.Create()
	op.Status = status
	return op
}

// WithPoints creates an operator holding the given balance
func (f *OperatorFactory) WithPoints(points int) *models.Operator {
	op := f.Create()
	op.TotalPoints = points
	return op
}

// CallFactory provides methods to create test Call data
type CallFactory struct{}

// NewCallFactory creates a new CallFactory
func NewCallFactory() *CallFactory {
	return &CallFactory{}
}

// Create creates an in-progress inbound call started a minute ago
func (f *CallFactory) Create(operatorID uuid.UUID) *models.Call {
	return &models.Call{
		BaseModel:      newBase(),
		OperatorID:     operatorID,
		CustomerNumber: "+5511999990000",
		Direction:      models.CallDirectionInbound,
		Status:         models.CallStatusInProgress,
		StartedAt:      time.Now().Add(-time.Minute),
	}
}

// Finalized creates a finalized call with the given outcome
func (f *CallFactory) Finalized(operatorID uuid.UUID, durationSeconds int, satisfaction *int, resolved bool, points int) *models.Call {
	call := f.Create(operatorID)
	ended := call.StartedAt.Add(time.Duration(durationSeconds) * time.Second)
	call.Status = models.CallStatusFinalized
	call.EndedAt = &ended
	call.DurationSeconds = durationSeconds
	call.Satisfaction = satisfaction
	call.Resolved = resolved
	call.PointsAwarded = points
	return call
}

// MissionFactory provides methods to create test Mission data
type MissionFactory struct{}

// NewMissionFactory creates a new MissionFactory
func NewMissionFactory() *MissionFactory {
	return &MissionFactory{}
}

// Create creates an active daily call mission
func (f *MissionFactory) Create() *models.Mission {
	base := newBase()
	return &models.Mission{
		BaseModel:    base,
		Title:        "Missao " + base.ID.String()[:6],
		Description:  "Atender chamadas",
		Cadence:      models.MissionCadenceDaily,
		Action:       models.ActionCall,
		TargetValue:  5,
		RewardPoints: 100,
		IsActive:     true,
	}
}

// WithTarget creates a mission tracking action with a custom target and reward
func (f *MissionFactory) WithTarget(action models.ActionType, target, reward int) *models.Mission {
	m := f.Create()
	m.Action = action
	m.TargetValue = target
	m.RewardPoints = reward
	return m
}

// AchievementFactory provides methods to create test Achievement data
type AchievementFactory struct{}

// NewAchievementFactory creates a new AchievementFactory
func NewAchievementFactory() *AchievementFactory {
	return &AchievementFactory{}
}

// Create creates an active achievement on the given condition
func (f *AchievementFactory) Create(condition models.AchievementCondition, threshold float64, reward int) *models.Achievement {
	base := newBase()
	return &models.Achievement{
		BaseModel:     base,
		Title:         "Conquista " + base.ID.String()[:6],
		Description:   "Conquista de teste",
		Icon:          "trophy",
		ConditionType: condition,
		Threshold:     threshold,
		RewardPoints:  reward,
		IsActive:      true,
	}
}

// RewardFactory provides methods to create test Reward data
type RewardFactory struct{}

// NewRewardFactory creates a new RewardFactory
func NewRewardFactory() *RewardFactory {
	return &RewardFactory{}
}

// Create creates an available reward with unlimited stock
func (f *RewardFactory) Create(price int) *models.Reward {
	base := newBase()
	return &models.Reward{
		BaseModel:   base,
		Title:       "Recompensa " + base.ID.String()[:6],
		Description: "Recompensa de teste",
		Category:    "folga",
		Rarity:      models.RewardRarityCommon,
		Price:       price,
		IsAvailable: true,
	}
}

// WithStock creates an available reward with finite stock
func (f *RewardFactory) WithStock(price, stock int) *models.Reward {
	r := f.Create(price)
	r.Stock = &stock
	return r
}

// GoalFactory provides methods to create test Goal data
type GoalFactory struct{}

// NewGoalFactory creates a new GoalFactory
func NewGoalFactory() *GoalFactory {
	return &GoalFactory{}
}

// Create creates an active weekly call goal covering the current week
func (f *GoalFactory) Create(managerID, operatorID uuid.UUID) *models.Goal {
	now := time.Now()
	return &models.Goal{
		BaseModel:    newBase(),
		ManagerID:    managerID,
		OperatorID:   operatorID,
		Type:         models.GoalTypeCalls,
		Title:        "Meta semanal",
		TargetValue:  50,
		Period:       models.GoalPeriodWeekly,
		StartDate:    datatypes.Date(now),
		EndDate:      datatypes.Date(now.AddDate(0, 0, 7)),
		RewardPoints: 200,
		IsActive:     true,
	}
}

// FactorySet holds all factories for easy access
type FactorySet struct {
	Manager     *ManagerFactory
	Operator    *OperatorFactory
	Call        *CallFactory
	Mission     *MissionFactory
	Achievement *AchievementFactory
	Reward      *RewardFactory
	Goal        *GoalFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Manager:     NewManagerFactory(),
		Operator:    NewOperatorFactory(),
		Call:        NewCallFactory(),
		Mission:     NewMissionFactory(),
		Achievement: NewAchievementFactory(),
		Reward:      NewRewardFactory(),
		Goal:        NewGoalFactory(),
	}
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}
