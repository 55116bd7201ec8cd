package entities

import (
	"time"

	"github.com/google/uuid"
)

type NutritionLog struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID   uuid.UUID `gorm:"index" json:"user_id"`
	FoodName string    `json:"food_name"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fats     float64   `json:"fats"`
	Quantity float64   `json:"quantity"`
	Unit     string    `json:"unit"`
	MealType string    `json:"meal_type"` // "BREAKFAST", "LUNCH", "DINNER", "SNACK"
	LoggedAt time.Time `gorm:"index" json:"logged_at"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
