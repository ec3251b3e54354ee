package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Goal ("meta") is a manager-assigned target for one operator
type Goal struct {
	BaseModel
	ManagerID    uuid.UUID      `json:"gestor_id" gorm:"type:uuid;not null;index"`
	OperatorID   uuid.UUID      `json:"operador_id" gorm:"type:uuid;not null;index"`
	Type         GoalType       `json:"tipo" gorm:"type:varchar(20);not null"`
	Title        string         `json:"titulo" gorm:"not null;size:150"`
	CurrentValue float64        `json:"valor_atual" gorm:"not null;default:0"`
	TargetValue  float64        `json:"valor_alvo" gorm:"not null"`
	Period       GoalPeriod     `json:"periodo" gorm:"type:varchar(20);not null"`
	StartDate    datatypes.Date `json:"data_inicio" gorm:"not null"`
	EndDate      datatypes.Date `json:"data_fim" gorm:"not null"`
	RewardPoints int            `json:"pontos_recompensa" gorm:"not null;default:0"`
	IsActive     bool           `json:"ativa" gorm:"not null;default:true;index"`
	Completed    bool           `json:"concluida" gorm:"not null;default:false"`
	CompletedAt  *time.Time     `json:"concluida_em,omitempty"`

	// Relationships
	Manager  *Manager  `json:"-" gorm:"foreignKey:ManagerID;constraint:OnDelete:CASCADE"`
	Operator *Operator `json:"operador,omitempty" gorm:"foreignKey:OperatorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Goal
func (Goal) TableName() string {
	return "goals"
}
