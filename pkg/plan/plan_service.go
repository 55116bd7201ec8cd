package plan

import (
	"FitnessPro-Backend/domain"
	"FitnessPro-Backend/entities"
	"FitnessPro-Backend/internal/utils/storage"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PlanService interface {
		GetPlans(ctx context.Context, query domain.PlanQuery) ([]domain.PlanResponse, int64, error)
		GetPlanByID(ctx context.Context, id string) (domain.PlanDetailResponse, error)
		CreatePlan(ctx context.Context, req domain.CreatePlanRequest) (domain.PlanDetailResponse, error)
		UploadPlanImage(ctx context.Context, req domain.UploadPlanImageRequest) error
	}

	planService struct {
		planRepository PlanRepository
		s3             storage.AwsS3
	}
)

func NewPlanService(planRepository PlanRepository, s3 storage.AwsS3) PlanService {
	return &planService{
		planRepository: planRepository,
		s3:             s3,
	}
}

func (s *planService) GetPlans(ctx context.Context, query domain.PlanQuery) ([]domain.PlanResponse, int64, error) {
	plans, count, err := s.planRepository.GetPlans(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.PlanResponse, 0, len(plans))
	for _, plan := range plans {
		workouts := make([]domain.WorkoutSummary, 0, len(plan.Workouts))
		for _, workout := range plan.Workouts {
			workouts = append(workouts, domain.WorkoutSummary{
				ID:       workout.ID.String(),
				Title:    workout.Title,
				Duration: workout.Duration,
				Calories: workout.Calories,
			})
		}

		response = append(response, domain.PlanResponse{
			ID:              plan.ID.String(),
			Title:           plan.Title,
			Description:     plan.Description,
			Category:        plan.Category,
			Difficulty:      plan.Difficulty,
			Duration:        plan.Duration,
			Price:           plan.Price,
			ImageURL:        plan.ImageURL,
			WorkoutCount:    len(plan.Workouts),
			SubscriberCount: int64(len(plan.Subscriptions)),
			Workouts:        workouts,
			CreatedAt:       plan.CreatedAt,
			UpdatedAt:       plan.UpdatedAt,
		})
	}

	return response, count, nil
}

func (s *planService) GetPlanByID(ctx context.Context, id string) (domain.PlanDetailResponse, error) {
	plan, err := s.planRepository.GetPlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PlanDetailResponse{}, domain.ErrPlanNotFound
		}
		return domain.PlanDetailResponse{}, err
	}

	return toPlanDetailResponse(plan), nil
}

// CreatePlan persists the whole plan graph in one transaction. Workout and
// exercise rows get app-generated ids and explicit ownership FKs, in the
// order they appear in the request.
func (s *planService) CreatePlan(ctx context.Context, req domain.CreatePlanRequest) (domain.PlanDetailResponse, error) {
	plan := &entities.FitnessPlan{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		Duration:    req.Duration,
		Price:       *req.Price,
		IsActive:    true,
	}

	var workouts []*entities.Workout
	var exercises []*entities.Exercise

	for i, workoutReq := range req.Workouts {
		workout := &entities.Workout{
			ID:          uuid.New(),
			PlanID:      plan.ID,
			Title:       workoutReq.Title,
			Description: workoutReq.Description,
			Duration:    workoutReq.Duration,
			Calories:    workoutReq.Calories,
			Order:       i + 1,
		}
		workouts = append(workouts, workout)

		for j, exerciseReq := range workoutReq.Exercises {
			exercises = append(exercises, &entities.Exercise{
				ID:        uuid.New(),
				WorkoutID: workout.ID,
				Name:      exerciseReq.Name,
				Sets:      exerciseReq.Sets,
				Reps:      exerciseReq.Reps,
				Duration:  exerciseReq.Duration,
				Rest:      exerciseReq.Rest,
				Notes:     exerciseReq.Notes,
				Order:     j + 1,
			})
		}
	}

	if err := s.planRepository.CreatePlanGraph(ctx, plan, workouts, exercises); err != nil {
		return domain.PlanDetailResponse{}, err
	}

	return s.GetPlanByID(ctx, plan.ID.String())
}

func (s *planService) UploadPlanImage(ctx context.Context, req domain.UploadPlanImageRequest) error {
	plan, err := s.planRepository.GetPlanByID(ctx, req.PlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPlanNotFound
		}
		return err
	}

	fileName := fmt.Sprintf("plan-%s", plan.ID.String())
	var objectKey string
	var uploadErr error

	if plan.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(plan.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "plans", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "plans", storage.AllowImage...)
	}
	if uploadErr != nil {
		return uploadErr
	}

	plan.ImageURL = s.s3.GetPublicLinkKey(objectKey)

	return s.planRepository.UpdatePlan(ctx, plan)
}

func toPlanDetailResponse(plan *entities.FitnessPlan) domain.PlanDetailResponse {
	workouts := make([]domain.WorkoutResponse, 0, len(plan.Workouts))
	for _, workout := range plan.Workouts {
		exercises := make([]domain.ExerciseResponse, 0, len(workout.Exercises))
		for _, exercise := range workout.Exercises {
			exercises = append(exercises, domain.ExerciseResponse{
				ID:       exercise.ID.String(),
				Name:     exercise.Name,
				Sets:     exercise.Sets,
				Reps:     exercise.Reps,
				Duration: exercise.Duration,
				Rest:     exercise.Rest,
				Notes:    exercise.Notes,
				Order:    exercise.Order,
			})
		}

		workouts = append(workouts, domain.WorkoutResponse{
			ID:          workout.ID.String(),
			Title:       workout.Title,
			Description: workout.Description,
			Duration:    workout.Duration,
			Calories:    workout.Calories,
			Order:       workout.Order,
			Exercises:   exercises,
		})
	}

	return domain.PlanDetailResponse{
		ID:          plan.ID.String(),
		Title:       plan.Title,
		Description: plan.Description,
		Category:    plan.Category,
		Difficulty:  plan.Difficulty,
		Duration:    plan.Duration,
		Price:       plan.Price,
		ImageURL:    plan.ImageURL,
		Workouts:    workouts,
		CreatedAt:   plan.CreatedAt,
	}
}
