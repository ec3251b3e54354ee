package models

import (
	"github.com/google/uuid"
)

// Ranking is the precomputed per-operator leaderboard aggregate
type Ranking struct {
	BaseModel
	OperatorID    uuid.UUID `json:"operador_id" gorm:"type:uuid;uniqueIndex;not null"`
	WeeklyPoints  int       `json:"pontos_semana" gorm:"not null;default:0"`
	MonthlyPoints int       `json:"pontos_mes" gorm:"not null;default:0"`
	WeeklyCalls   int       `json:"chamadas_semana" gorm:"not null;default:0"`
	MonthlyCalls  int       `json:"chamadas_mes" gorm:"not null;default:0"`
	Position      int       `json:"posicao" gorm:"not null;default:0;index"`

	// Relationships
	Operator *Operator `json:"operador,omitempty" gorm:"foreignKey:OperatorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Ranking
func (Ranking) TableName() string {
	return "rankings"
}

// RankingEntry is one leaderboard line as returned to clients
type RankingEntry struct {
	Position     int       `json:"posicao"`
	OperatorID   uuid.UUID `json:"operador_id"`
	OperatorName string    `json:"nome"`
	Level        int       `json:"nivel"`
	Points       int       `json:"pontos"`
	Calls        int       `json:"chamadas"`
}
