package nutrition

import (
	"FitnessPro-Backend/domain"
	"FitnessPro-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	NutritionService interface {
		GetLogs(ctx context.Context, userID string, date, startDate, endDate string) (domain.NutritionLogsResponse, error)
		CreateLog(ctx context.Context, req domain.CreateNutritionLogRequest, userID string) (domain.NutritionLogResponse, error)
		UpdateLog(ctx context.Context, id string, req domain.UpdateNutritionLogRequest, userID string) (domain.NutritionLogResponse, error)
		DeleteLog(ctx context.Context, id string, userID string) error
	}

	nutritionService struct {
		nutritionRepository NutritionRepository
	}
)

func NewNutritionService(nutritionRepository NutritionRepository) NutritionService {
	return &nutritionService{nutritionRepository: nutritionRepository}
}

func (s *nutritionService) GetLogs(ctx context.Context, userID string, date, startDate, endDate string) (domain.NutritionLogsResponse, error) {
	dateRange, err := ResolveDateRange(date, startDate, endDate, time.Now())
	if err != nil {
		return domain.NutritionLogsResponse{}, err
	}

	logs, err := s.nutritionRepository.GetLogs(ctx, LogFilter{
		UserID: userID,
		From:   dateRange.From,
		To:     dateRange.To,
	})
	if err != nil {
		return domain.NutritionLogsResponse{}, err
	}

	response := make([]domain.NutritionLogResponse, 0, len(logs))
	for _, log := range logs {
		response = append(response, toLogResponse(log))
	}

	totals, mealGroups := Aggregate(response)

	return domain.NutritionLogsResponse{
		Logs:       response,
		Totals:     totals,
		MealGroups: mealGroups,
	}, nil
}

func (s *nutritionService) CreateLog(ctx context.Context, req domain.CreateNutritionLogRequest, userID string) (domain.NutritionLogResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.NutritionLogResponse{}, domain.ErrParseUUID
	}

	loggedAt := time.Now()
	if req.LoggedAt != "" {
		loggedAt, err = parseInstant(req.LoggedAt, time.Local)
		if err != nil {
			return domain.NutritionLogResponse{}, domain.ErrInvalidDate
		}
	}

	log := &entities.NutritionLog{
		ID:       uuid.New(),
		UserID:   userUUID,
		FoodName: req.FoodName,
		Calories: *req.Calories,
		Protein:  *req.Protein,
		Carbs:    *req.Carbs,
		Fats:     *req.Fats,
		Quantity: *req.Quantity,
		Unit:     req.Unit,
		MealType: req.MealType,
		LoggedAt: loggedAt,
	}

	if err := s.nutritionRepository.CreateLog(ctx, log); err != nil {
		return domain.NutritionLogResponse{}, err
	}

	return toLogResponse(log), nil
}

// UpdateLog merges the supplied fields into the stored entry; fields absent
// from the request keep their current values.
func (s *nutritionService) UpdateLog(ctx context.Context, id string, req domain.UpdateNutritionLogRequest, userID string) (domain.NutritionLogResponse, error) {
	log, err := s.nutritionRepository.GetLogByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NutritionLogResponse{}, domain.ErrNutritionLogNotFound
		}
		return domain.NutritionLogResponse{}, err
	}

	if req.FoodName != nil {
		log.FoodName = *req.FoodName
	}
	if req.Calories != nil {
		log.Calories = *req.Calories
	}
	if req.Protein != nil {
		log.Protein = *req.Protein
	}
	if req.Carbs != nil {
		log.Carbs = *req.Carbs
	}
	if req.Fats != nil {
		log.Fats = *req.Fats
	}
	if req.Quantity != nil {
		log.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		log.Unit = *req.Unit
	}
	if req.MealType != nil {
		log.MealType = *req.MealType
	}

	if err := s.nutritionRepository.UpdateLog(ctx, log); err != nil {
		return domain.NutritionLogResponse{}, err
	}

	return toLogResponse(log), nil
}

func (s *nutritionService) DeleteLog(ctx context.Context, id string, userID string) error {
	if _, err := s.nutritionRepository.GetLogByID(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNutritionLogNotFound
		}
		return err
	}

	return s.nutritionRepository.DeleteLog(ctx, id, userID)
}

func toLogResponse(log *entities.NutritionLog) domain.NutritionLogResponse {
	return domain.NutritionLogResponse{
		ID:       log.ID.String(),
		FoodName: log.FoodName,
		Calories: log.Calories,
		Protein:  log.Protein,
		Carbs:    log.Carbs,
		Fats:     log.Fats,
		Quantity: log.Quantity,
		Unit:     log.Unit,
		MealType: log.MealType,
		LoggedAt: log.LoggedAt,
	}
}
