package nutrition

import (
	"FitnessPro-Backend/domain"
	"FitnessPro-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

// LogFilter enumerates the recognized filters for a log query. It is
// validated before it reaches the database instead of assembling a
// free-form where clause.
type LogFilter struct {
	UserID string
	From   time.Time
	To     time.Time
}

func (f LogFilter) Validate() error {
	if f.UserID == "" {
		return domain.ErrUserNotFound
	}
	if f.From.IsZero() || f.To.IsZero() || f.From.After(f.To) {
		return domain.ErrInvalidDate
	}
	return nil
}

type (
	NutritionRepository interface {
		CreateLog(ctx context.Context, log *entities.NutritionLog) error
		GetLogByID(ctx context.Context, id string, userID string) (*entities.NutritionLog, error)
		GetLogs(ctx context.Context, filter LogFilter) ([]*entities.NutritionLog, error)
		UpdateLog(ctx context.Context, log *entities.NutritionLog) error
		DeleteLog(ctx context.Context, id string, userID string) error
	}

	nutritionRepository struct {
		db *gorm.DB
	}
)

func NewNutritionRepository(db *gorm.DB) NutritionRepository {
	return &nutritionRepository{db: db}
}

func (r *nutritionRepository) CreateLog(ctx context.Context, log *entities.NutritionLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// GetLogByID is scoped by both id and owner, so an entry that exists but
// belongs to another user surfaces as gorm.ErrRecordNotFound.
func (r *nutritionRepository) GetLogByID(ctx context.Context, id string, userID string) (*entities.NutritionLog, error) {
	var log entities.NutritionLog
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *nutritionRepository) GetLogs(ctx context.Context, filter LogFilter) ([]*entities.NutritionLog, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var logs []*entities.NutritionLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND logged_at BETWEEN ? AND ?",
			filter.UserID, filter.From, filter.To).
		Order("logged_at asc").
		Find(&logs).Error; err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *nutritionRepository) UpdateLog(ctx context.Context, log *entities.NutritionLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}

func (r *nutritionRepository) DeleteLog(ctx context.Context, id string, userID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.NutritionLog{}).Error
}
