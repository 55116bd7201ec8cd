package plan

import (
	"FitnessPro-Backend/domain"
	"FitnessPro-Backend/entities"
	"context"
	"strings"

	"gorm.io/gorm"
)

type (
	PlanRepository interface {
		// CreatePlanGraph writes a plan and its workout/exercise rows as
		// ordered inserts inside one transaction. Identifiers and FKs are
		// generated by the caller, not by cascading ORM magic.
		CreatePlanGraph(ctx context.Context, plan *entities.FitnessPlan, workouts []*entities.Workout, exercises []*entities.Exercise) error
		GetPlanByID(ctx context.Context, id string) (*entities.FitnessPlan, error)
		GetPlans(ctx context.Context, query domain.PlanQuery) ([]*entities.FitnessPlan, int64, error)
		UpdatePlan(ctx context.Context, plan *entities.FitnessPlan) error
	}

	planRepository struct {
		db *gorm.DB
	}
)

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) CreatePlanGraph(ctx context.Context, plan *entities.FitnessPlan, workouts []*entities.Workout, exercises []*entities.Exercise) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		for _, workout := range workouts {
			if err := tx.Create(workout).Error; err != nil {
				return err
			}
		}
		for _, exercise := range exercises {
			if err := tx.Create(exercise).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *planRepository) GetPlanByID(ctx context.Context, id string) (*entities.FitnessPlan, error) {
	var plan entities.FitnessPlan
	if err := r.db.WithContext(ctx).
		Preload("Workouts", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc")
		}).
		Preload("Workouts.Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc")
		}).
		Where("id = ? AND is_active = ?", id, true).
		First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) GetPlans(ctx context.Context, query domain.PlanQuery) ([]*entities.FitnessPlan, int64, error) {
	var plans []*entities.FitnessPlan
	var count int64

	offset := (query.Page - 1) * query.Limit

	tx := r.db.WithContext(ctx).Model(&entities.FitnessPlan{}).Where("is_active = ?", true)

	if query.Category != "" {
		tx = tx.Where("category = ?", query.Category)
	}
	if query.Difficulty != "" {
		tx = tx.Where("difficulty = ?", query.Difficulty)
	}
	if query.Search != "" {
		pattern := "%" + strings.ToLower(query.Search) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := tx.
		Preload("Workouts", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc")
		}).
		Preload("Subscriptions").
		Offset(offset).
		Limit(query.Limit).
		Order("created_at desc").
		Find(&plans).Error; err != nil {
		return nil, 0, err
	}

	return plans, count, nil
}

func (r *planRepository) UpdatePlan(ctx context.Context, plan *entities.FitnessPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}
