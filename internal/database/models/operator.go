package models

import (
	"time"

	"github.com/google/uuid"
)

// Operator is a call-center agent together with its gamification state
type Operator struct {
	BaseModel
	ManagerID     *uuid.UUID     `json:"gestor_id,omitempty" gorm:"type:uuid;index"`
	Name          string         `json:"nome" gorm:"not null;size:200" validate:"required,max=200"`
	Email         string         `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash  string         `json:"-" gorm:"not null;size:100"`
	Level         int            `json:"nivel" gorm:"not null;default:1"`
	CurrentXP     int            `json:"xp_atual" gorm:"not null;default:0"`
	NextLevelXP   int            `json:"xp_proximo_nivel" gorm:"not null;default:100"`
	TotalPoints   int            `json:"pontos_totais" gorm:"not null;default:0"`
	Status        OperatorStatus `json:"status" gorm:"type:varchar(30);not null;default:'offline';index"`
	OnlineSince   *time.Time     `json:"online_desde,omitempty"`
	OnlineSeconds int64          `json:"tempo_online_segundos" gorm:"not null;default:0"`
	IsActive      bool           `json:"ativo" gorm:"default:true"`

	// Relationships
	Manager *Manager `json:"gestor,omitempty" gorm:"foreignKey:ManagerID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Operator
func (Operator) TableName() string {
	return "operators"
}

// ApplyStatus moves the operator to status at time now, keeping the online
// clock in step: time spent in any non-offline status is added to
// OnlineSeconds when the operator goes offline.
func (o *Operator) ApplyStatus(status OperatorStatus, now time.Time) {
	wasOnline := o.Status != OperatorStatusOffline
	goesOnline := status != OperatorStatusOffline

	switch {
	case wasOnline && !goesOnline:
		if o.OnlineSince != nil {
			o.OnlineSeconds += int64(now.Sub(*o.OnlineSince).Seconds())
		}
		o.OnlineSince = nil
	case goesOnline && (!wasOnline || o.OnlineSince == nil):
		o.OnlineSince = &now
	}
	o.Status = status
}

// OnlineSecondsAt returns the accumulated online time including the current
// session, if any
func (o *Operator) OnlineSecondsAt(now time.Time) int64 {
	total := o.OnlineSeconds
	if o.Status != OperatorStatusOffline && o.OnlineSince != nil {
		total += int64(now.Sub(*o.OnlineSince).Seconds())
	}
	return total
}
