package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetPlans        = "fitness plans retrieved successfully"
	MessageSuccessGetPlanDetails  = "fitness plan retrieved successfully"
	MessageSuccessCreatePlan      = "fitness plan created successfully"
	MessageSuccessUploadPlanImage = "plan image uploaded successfully"

	MessageFailedGetPlans        = "failed to retrieve fitness plans"
	MessageFailedGetPlanDetails  = "failed to retrieve fitness plan"
	MessageFailedCreatePlan      = "failed to create fitness plan"
	MessageFailedUploadPlanImage = "failed to upload plan image"

	ErrPlanNotFound = errors.New("fitness plan not found")
)

type (
	// PlanQuery enumerates the recognized listing filters. It replaces the
	// free-form where-clause map the browse endpoint used to build.
	PlanQuery struct {
		Category   string `validate:"omitempty,oneof=STRENGTH CARDIO YOGA HIIT FLEXIBILITY"`
		Difficulty string `validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
		Search     string `validate:"omitempty,max=100"`
		Page       int    `validate:"min=1"`
		Limit      int    `validate:"min=1,max=100"`
	}

	CreateExerciseRequest struct {
		Name     string `json:"name" validate:"required"`
		Sets     int    `json:"sets" validate:"omitempty,min=0"`
		Reps     int    `json:"reps" validate:"omitempty,min=0"`
		Duration int    `json:"duration" validate:"omitempty,min=0"`
		Rest     int    `json:"rest" validate:"omitempty,min=0"`
		Notes    string `json:"notes"`
	}

	CreateWorkoutRequest struct {
		Title       string                  `json:"title" validate:"required"`
		Description string                  `json:"description"`
		Duration    int                     `json:"duration" validate:"omitempty,min=0"`
		Calories    int                     `json:"calories" validate:"omitempty,min=0"`
		Exercises   []CreateExerciseRequest `json:"exercises" validate:"omitempty,dive"`
	}

	CreatePlanRequest struct {
		Title       string                 `json:"title" validate:"required"`
		Description string                 `json:"description" validate:"required"`
		Category    string                 `json:"category" validate:"required,oneof=STRENGTH CARDIO YOGA HIIT FLEXIBILITY"`
		Difficulty  string                 `json:"difficulty" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED"`
		Duration    int                    `json:"duration" validate:"required,min=1"`
		Price       *float64               `json:"price" validate:"required,gte=0"`
		Workouts    []CreateWorkoutRequest `json:"workouts" validate:"omitempty,dive"`
	}

	UploadPlanImageRequest struct {
		PlanID string                `json:"plan_id" form:"plan_id" validate:"required,uuid"`
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	WorkoutSummary struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		Duration int    `json:"duration"`
		Calories int    `json:"calories"`
	}

	PlanResponse struct {
		ID              string           `json:"id"`
		Title           string           `json:"title"`
		Description     string           `json:"description"`
		Category        string           `json:"category"`
		Difficulty      string           `json:"difficulty"`
		Duration        int              `json:"duration"`
		Price           float64          `json:"price"`
		ImageURL        string           `json:"image_url,omitempty"`
		WorkoutCount    int              `json:"workout_count"`
		SubscriberCount int64            `json:"subscriber_count"`
		Workouts        []WorkoutSummary `json:"workouts"`
		CreatedAt       time.Time        `json:"created_at"`
		UpdatedAt       time.Time        `json:"updated_at"`
	}

	ExerciseResponse struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Sets     int    `json:"sets,omitempty"`
		Reps     int    `json:"reps,omitempty"`
		Duration int    `json:"duration,omitempty"`
		Rest     int    `json:"rest,omitempty"`
		Notes    string `json:"notes,omitempty"`
		Order    int    `json:"order"`
	}

	WorkoutResponse struct {
		ID          string             `json:"id"`
		Title       string             `json:"title"`
		Description string             `json:"description,omitempty"`
		Duration    int                `json:"duration"`
		Calories    int                `json:"calories"`
		Order       int                `json:"order"`
		Exercises   []ExerciseResponse `json:"exercises"`
	}

	PlanDetailResponse struct {
		ID          string            `json:"id"`
		Title       string            `json:"title"`
		Description string            `json:"description"`
		Category    string            `json:"category"`
		Difficulty  string            `json:"difficulty"`
		Duration    int               `json:"duration"`
		Price       float64           `json:"price"`
		ImageURL    string            `json:"image_url,omitempty"`
		Workouts    []WorkoutResponse `json:"workouts"`
		CreatedAt   time.Time         `json:"created_at"`
	}
)
