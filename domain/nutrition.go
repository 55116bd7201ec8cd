package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetNutritionLogs   = "nutrition logs retrieved successfully"
	MessageSuccessCreateNutritionLog = "nutrition log created successfully"
	MessageSuccessUpdateNutritionLog = "nutrition log updated successfully"
	MessageSuccessDeleteNutritionLog = "nutrition log deleted successfully"

	MessageFailedGetNutritionLogs   = "failed to retrieve nutrition logs"
	MessageFailedCreateNutritionLog = "failed to create nutrition log"
	MessageFailedUpdateNutritionLog = "failed to update nutrition log"
	MessageFailedDeleteNutritionLog = "failed to delete nutrition log"

	ErrNutritionLogNotFound  = errors.New("nutrition log not found")
	ErrNutritionLogIDMissing = errors.New("nutrition log ID is required")
	ErrInvalidDate           = errors.New("invalid date format")
	ErrIncompleteDateRange   = errors.New("both startDate and endDate are required for a range")
)

// Meal types a log entry may carry.
const (
	MealBreakfast = "BREAKFAST"
	MealLunch     = "LUNCH"
	MealDinner    = "DINNER"
	MealSnack     = "SNACK"
)

var MealTypes = []string{MealBreakfast, MealLunch, MealDinner, MealSnack}

type (
	CreateNutritionLogRequest struct {
		FoodName string   `json:"foodName" validate:"required"`
		Calories *float64 `json:"calories" validate:"required,gte=0"`
		Protein  *float64 `json:"protein" validate:"required,gte=0"`
		Carbs    *float64 `json:"carbs" validate:"required,gte=0"`
		Fats     *float64 `json:"fats" validate:"required,gte=0"`
		Quantity *float64 `json:"quantity" validate:"required,gt=0"`
		Unit     string   `json:"unit" validate:"required"`
		MealType string   `json:"mealType" validate:"required,oneof=BREAKFAST LUNCH DINNER SNACK"`
		LoggedAt string   `json:"loggedAt" validate:"omitempty"`
	}

	// UpdateNutritionLogRequest carries a partial update. Pointer fields
	// distinguish "absent, keep the current value" from an explicit zero.
	UpdateNutritionLogRequest struct {
		FoodName *string  `json:"foodName" validate:"omitempty"`
		Calories *float64 `json:"calories" validate:"omitempty,gte=0"`
		Protein  *float64 `json:"protein" validate:"omitempty,gte=0"`
		Carbs    *float64 `json:"carbs" validate:"omitempty,gte=0"`
		Fats     *float64 `json:"fats" validate:"omitempty,gte=0"`
		Quantity *float64 `json:"quantity" validate:"omitempty,gt=0"`
		Unit     *string  `json:"unit" validate:"omitempty"`
		MealType *string  `json:"mealType" validate:"omitempty,oneof=BREAKFAST LUNCH DINNER SNACK"`
	}

	NutritionLogResponse struct {
		ID       string    `json:"id"`
		FoodName string    `json:"food_name"`
		Calories float64   `json:"calories"`
		Protein  float64   `json:"protein"`
		Carbs    float64   `json:"carbs"`
		Fats     float64   `json:"fats"`
		Quantity float64   `json:"quantity"`
		Unit     string    `json:"unit"`
		MealType string    `json:"meal_type"`
		LoggedAt time.Time `json:"logged_at"`
	}

	NutritionTotals struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fats     float64 `json:"fats"`
	}

	NutritionLogsResponse struct {
		Logs       []NutritionLogResponse            `json:"logs"`
		Totals     NutritionTotals                   `json:"totals"`
		MealGroups map[string][]NutritionLogResponse `json:"mealGroups"`
	}
)
