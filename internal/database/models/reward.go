package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Reward is a store item purchasable with points. A nil Stock means unlimited.
type Reward struct {
	BaseModel
	Title       string         `json:"titulo" gorm:"uniqueIndex;not null;size:150" validate:"required,max=150"`
	Description string         `json:"descricao" gorm:"type:text"`
	ImageURL    string         `json:"imagem_url" gorm:"size:500"`
	Category    string         `json:"categoria" gorm:"size:60;index"`
	Rarity      RewardRarity   `json:"raridade" gorm:"type:varchar(20);not null;default:'comum'"`
	Price       int            `json:"preco" gorm:"not null" validate:"min=0"`
	IsAvailable bool           `json:"disponivel" gorm:"not null;default:true"`
	Stock       *int           `json:"estoque,omitempty"`
	Metadata    datatypes.JSON `json:"metadata,omitempty" gorm:"type:jsonb"`
}

// TableName returns the table name for Reward
func (Reward) TableName() string {
	return "rewards"
}

// HasFiniteStock reports whether the reward tracks remaining stock
func (r *Reward) HasFiniteStock() bool {
	return r.Stock != nil
}

// Purchase records the redemption of a reward by an operator
type Purchase struct {
	BaseModel
	OperatorID  uuid.UUID      `json:"operador_id" gorm:"type:uuid;not null;index:idx_purchases_operator_reward"`
	RewardID    uuid.UUID      `json:"recompensa_id" gorm:"type:uuid;not null;index:idx_purchases_operator_reward"`
	PricePaid   int            `json:"preco_pago" gorm:"not null"`
	Status      PurchaseStatus `json:"status" gorm:"type:varchar(20);not null;default:'aprovada'"`
	PurchasedAt time.Time      `json:"data_compra" gorm:"not null"`

	// Relationships
	Operator *Operator `json:"-" gorm:"foreignKey:OperatorID;constraint:OnDelete:CASCADE"`
	Reward   *Reward   `json:"recompensa,omitempty" gorm:"foreignKey:RewardID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Purchase
func (Purchase) TableName() string {
	return "purchases"
}
