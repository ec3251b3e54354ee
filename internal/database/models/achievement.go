package models

import (
	"time"

	"github.com/google/uuid"
)

// Achievement is a one-time unlockable milestone
type Achievement struct {
	BaseModel
	Title         string               `json:"titulo" gorm:"uniqueIndex;not null;size:150" validate:"required,max=150"`
	Description   string               `json:"descricao" gorm:"type:text"`
	Icon          string               `json:"icone" gorm:"size:100"`
	ConditionType AchievementCondition `json:"tipo_condicao" gorm:"type:varchar(40);not null"`
	Threshold     float64              `json:"valor_condicao" gorm:"not null"`
	RewardPoints  int                  `json:"pontos_recompensa" gorm:"not null;default:0"`
	IsActive      bool                 `json:"ativa" gorm:"not null;default:true;index"`
}

// TableName returns the table name for Achievement
func (Achievement) TableName() string {
	return "achievements"
}

// OperatorAchievement records that an operator unlocked an achievement.
// Rows are never updated or deleted.
type OperatorAchievement struct {
	OperatorID    uuid.UUID `json:"operador_id" gorm:"type:uuid;primaryKey"`
	AchievementID uuid.UUID `json:"conquista_id" gorm:"type:uuid;primaryKey"`
	UnlockedAt    time.Time `json:"desbloqueada_em" gorm:"not null"`

	// Relationships
	Operator    *Operator    `json:"-" gorm:"foreignKey:OperatorID;constraint:OnDelete:CASCADE"`
	Achievement *Achievement `json:"-" gorm:"foreignKey:AchievementID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for OperatorAchievement
func (OperatorAchievement) TableName() string {
	return "operator_achievements"
}

// AchievementWithStatus is an achievement annotated with one operator's unlock state
type AchievementWithStatus struct {
	Achievement
	Unlocked   bool       `json:"desbloqueada"`
	UnlockedAt *time.Time `json:"desbloqueada_em,omitempty"`
}
