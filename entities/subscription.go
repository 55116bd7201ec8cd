package entities

import (
	"github.com/google/uuid"
)

type Subscription struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID  uuid.UUID `gorm:"index" json:"user_id"`
	PlanID  uuid.UUID `gorm:"index" json:"plan_id"`
	Status  string    `json:"status"` // "Pending", "Active", "Cancelled", "Expired"
	OrderID string    `gorm:"uniqueIndex" json:"order_id"`

	User *User        `gorm:"foreignKey:UserID"`
	Plan *FitnessPlan `gorm:"foreignKey:PlanID"`
	Timestamp
}
