package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name           string    `json:"name"`
	Email          string    `gorm:"uniqueIndex" json:"email"`
	Password       string    `json:"-"`
	Role           string    `json:"role"` // "user", "admin"
	ProfilePicture string    `json:"profile_picture,omitempty"`

	NutritionLogs []*NutritionLog `gorm:"foreignKey:UserID"`
	Subscriptions []*Subscription `gorm:"foreignKey:UserID"`
	Notifications []*Notification `gorm:"foreignKey:UserID"`
	Timestamp
}
