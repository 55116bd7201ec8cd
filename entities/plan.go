package entities

import (
	"github.com/google/uuid"
)

type FitnessPlan struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title       string    `json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `json:"category"`   // "STRENGTH", "CARDIO", "YOGA", "HIIT", "FLEXIBILITY"
	Difficulty  string    `json:"difficulty"` // "BEGINNER", "INTERMEDIATE", "ADVANCED"
	Duration    int       `json:"duration"`   // weeks
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url,omitempty"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`

	Workouts      []*Workout      `gorm:"foreignKey:PlanID"`
	Subscriptions []*Subscription `gorm:"foreignKey:PlanID"`
	Timestamp
}

type Workout struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PlanID      uuid.UUID `gorm:"index" json:"plan_id"`
	Title       string    `json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Duration    int       `json:"duration"` // minutes
	Calories    int       `json:"calories"`
	Order       int       `gorm:"column:sort_order" json:"order"`

	Plan      *FitnessPlan `gorm:"foreignKey:PlanID"`
	Exercises []*Exercise  `gorm:"foreignKey:WorkoutID"`
	Timestamp
}

type Exercise struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	WorkoutID uuid.UUID `gorm:"index" json:"workout_id"`
	Name      string    `json:"name"`
	Sets      int       `json:"sets,omitempty"`
	Reps      int       `json:"reps,omitempty"`
	Duration  int       `json:"duration,omitempty"` // seconds, for timed exercises
	Rest      int       `json:"rest,omitempty"`     // seconds
	Notes     string    `json:"notes,omitempty"`
	Order     int       `gorm:"column:sort_order" json:"order"`

	Workout *Workout `gorm:"foreignKey:WorkoutID"`
	Timestamp
}
