package models

import (
	"time"

	"github.com/google/uuid"
)

// Mission is a globally defined, reusable goal with a progress threshold
type Mission struct {
	BaseModel
	Title        string         `json:"titulo" gorm:"not null;size:150" validate:"required,max=150"`
	Description  string         `json:"descricao" gorm:"type:text"`
	Cadence      MissionCadence `json:"tipo" gorm:"type:varchar(20);not null;default:'diaria'"`
	Action       ActionType     `json:"acao" gorm:"type:varchar(30);not null;default:'call'"`
	TargetValue  int            `json:"valor_alvo" gorm:"not null" validate:"required,min=1"`
	RewardPoints int            `json:"pontos_recompensa" gorm:"not null;default:0" validate:"min=0"`
	IsActive     bool           `json:"ativa" gorm:"not null;default:true;index"`
	ExpiresAt    *time.Time     `json:"expira_em,omitempty"`
}

// TableName returns the table name for Mission
func (Mission) TableName() string {
	return "missions"
}

// MissionProgress is an operator's progress towards a mission. Rows are
// created on the first progress update.
type MissionProgress struct {
	OperatorID  uuid.UUID  `json:"operador_id" gorm:"type:uuid;primaryKey"`
	MissionID   uuid.UUID  `json:"missao_id" gorm:"type:uuid;primaryKey"`
	Progress    int        `json:"progresso_atual" gorm:"not null;default:0"`
	Completed   bool       `json:"concluida" gorm:"not null;default:false"`
	CompletedAt *time.Time `json:"concluida_em,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relationships
	Operator *Operator `json:"-" gorm:"foreignKey:OperatorID;constraint:OnDelete:CASCADE"`
	Mission  *Mission  `json:"-" gorm:"foreignKey:MissionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for MissionProgress
func (MissionProgress) TableName() string {
	return "mission_progress"
}

// MissionWithProgress is a mission joined with one operator's progress row.
// Missions the operator never advanced carry zero progress.
type MissionWithProgress struct {
	Mission
	Progress    int        `json:"progresso_atual"`
	Completed   bool       `json:"concluida"`
	CompletedAt *time.Time `json:"concluida_em,omitempty"`
}
