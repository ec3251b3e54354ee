package models

// Manager supervises a set of operators
type Manager struct {
	BaseModel
	Name         string `json:"nome" gorm:"not null;size:200" validate:"required,max=200"`
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string `json:"-" gorm:"not null;size:100"`
	Department   string `json:"departamento" gorm:"size:100"`
	IsActive     bool   `json:"ativo" gorm:"default:true"`

	// Relationships
	Operators []Operator `json:"operadores,omitempty" gorm:"foreignKey:ManagerID"`
}

// TableName returns the table name for Manager
func (Manager) TableName() string {
	return "managers"
}
