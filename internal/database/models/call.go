package models

import (
	"time"

	"github.com/google/uuid"
)

// Call is one contact handled by an operator. It is created in progress and
// mutated exactly once, at finalization.
type Call struct {
	BaseModel
	OperatorID      uuid.UUID     `json:"operador_id" gorm:"type:uuid;not null;index:idx_calls_operator_status"`
	CustomerNumber  string        `json:"numero_cliente" gorm:"not null;size:30"`
	Direction       CallDirection `json:"tipo_chamada" gorm:"type:varchar(20);not null;default:'entrada'"`
	Status          CallStatus    `json:"status" gorm:"type:varchar(20);not null;default:'em_andamento';index:idx_calls_operator_status"`
	StartedAt       time.Time     `json:"inicio" gorm:"not null;index"`
	EndedAt         *time.Time    `json:"fim,omitempty"`
	DurationSeconds int           `json:"duracao_segundos" gorm:"not null;default:0"`
	Satisfaction    *int          `json:"satisfacao_cliente,omitempty" gorm:"check:satisfaction IS NULL OR (satisfaction BETWEEN 1 AND 5)"`
	Resolved        bool          `json:"resolvida" gorm:"not null;default:false"`
	Notes           string        `json:"observacoes" gorm:"type:text"`
	PointsAwarded   int           `json:"pontos_ganhos" gorm:"not null;default:0"`

	// Relationships
	Operator *Operator `json:"operador,omitempty" gorm:"foreignKey:OperatorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Call
func (Call) TableName() string {
	return "calls"
}
