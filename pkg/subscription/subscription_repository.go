package subscription

import (
	"FitnessPro-Backend/domain"
	"FitnessPro-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	SubscriptionRepository interface {
		CreateSubscription(ctx context.Context, subscription *entities.Subscription) error
		GetSubscriptionByOrderID(ctx context.Context, orderID string) (*entities.Subscription, error)
		GetSubscriptions(ctx context.Context, userID string) ([]*entities.Subscription, error)
		HasOpenSubscription(ctx context.Context, userID, planID string) (bool, error)
		UpdateSubscription(ctx context.Context, subscription *entities.Subscription) error
	}

	subscriptionRepository struct {
		db *gorm.DB
	}
)

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) CreateSubscription(ctx context.Context, subscription *entities.Subscription) error {
	return r.db.WithContext(ctx).Create(subscription).Error
}

func (r *subscriptionRepository) GetSubscriptionByOrderID(ctx context.Context, orderID string) (*entities.Subscription, error) {
	var subscription entities.Subscription
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&subscription).Error; err != nil {
		return nil, err
	}
	return &subscription, nil
}

func (r *subscriptionRepository) GetSubscriptions(ctx context.Context, userID string) ([]*entities.Subscription, error) {
	var subscriptions []*entities.Subscription
	if err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&subscriptions).Error; err != nil {
		return nil, err
	}
	return subscriptions, nil
}

// HasOpenSubscription reports whether the user already holds a pending or
// active subscription to the plan.
func (r *subscriptionRepository) HasOpenSubscription(ctx context.Context, userID, planID string) (bool, error) {
	var subscription entities.Subscription
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND plan_id = ? AND status IN ?",
			userID, planID,
			[]string{domain.SubscriptionPending, domain.SubscriptionActive}).
		First(&subscription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *subscriptionRepository) UpdateSubscription(ctx context.Context, subscription *entities.Subscription) error {
	return r.db.WithContext(ctx).Save(subscription).Error
}
