package subscription

import (
	"FitnessPro-Backend/domain"
	"FitnessPro-Backend/entities"
	"FitnessPro-Backend/pkg/plan"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.FitnessPlan{},
		&entities.Workout{},
		&entities.Exercise{},
		&entities.Subscription{},
	))
	return db
}

func newTestService(t *testing.T) (SubscriptionService, SubscriptionRepository, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	repository := NewSubscriptionRepository(db)
	return NewSubscriptionService(repository, plan.NewPlanRepository(db)), repository, db
}

func createPlan(t *testing.T, db *gorm.DB, price float64) *entities.FitnessPlan {
	t.Helper()

	fitnessPlan := &entities.FitnessPlan{
		ID:          uuid.New(),
		Title:       "Full Body Strength",
		Description: "A structured training program",
		Category:    "STRENGTH",
		Difficulty:  "BEGINNER",
		Duration:    8,
		Price:       price,
		IsActive:    true,
	}
	require.NoError(t, db.Create(fitnessPlan).Error)
	return fitnessPlan
}

func TestSubscribeFreePlanActivatesImmediately(t *testing.T) {
	service, repository, db := newTestService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	fitnessPlan := createPlan(t, db, 0)

	res, err := service.Subscribe(ctx, domain.SubscribeRequest{PlanID: fitnessPlan.ID.String()}, userID)
	require.NoError(t, err)

	// No payment round trip for a free plan.
	assert.Equal(t, domain.SubscriptionActive, res.Status)
	assert.Empty(t, res.PaymentURL)
	assert.Empty(t, res.Token)
	assert.True(t, strings.HasPrefix(res.OrderID, "FITPRO-"))

	stored, err := repository.GetSubscriptionByOrderID(ctx, res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionActive, stored.Status)
	assert.Equal(t, fitnessPlan.ID, stored.PlanID)
}

func TestSubscribeRejectsOpenSubscription(t *testing.T) {
	service, _, db := newTestService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	fitnessPlan := createPlan(t, db, 0)

	_, err := service.Subscribe(ctx, domain.SubscribeRequest{PlanID: fitnessPlan.ID.String()}, userID)
	require.NoError(t, err)

	_, err = service.Subscribe(ctx, domain.SubscribeRequest{PlanID: fitnessPlan.ID.String()}, userID)
	assert.ErrorIs(t, err, domain.ErrAlreadySubscribed)
}

func TestSubscribeGuardIgnoresClosedSubscriptions(t *testing.T) {
	service, repository, db := newTestService(t)
	ctx := context.Background()
	userUUID := uuid.New()

	fitnessPlan := createPlan(t, db, 0)

	// A cancelled subscription does not block subscribing again.
	require.NoError(t, repository.CreateSubscription(ctx, &entities.Subscription{
		ID:      uuid.New(),
		UserID:  userUUID,
		PlanID:  fitnessPlan.ID,
		Status:  domain.SubscriptionCancelled,
		OrderID: fmt.Sprintf("FITPRO-%s", uuid.New().String()),
	}))

	res, err := service.Subscribe(ctx, domain.SubscribeRequest{PlanID: fitnessPlan.ID.String()}, userUUID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionActive, res.Status)
}

func TestSubscribeUnknownPlan(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.Subscribe(context.Background(), domain.SubscribeRequest{
		PlanID: uuid.New().String(),
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)
}

func TestSubscribeRejectsBadUserID(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.Subscribe(context.Background(), domain.SubscribeRequest{
		PlanID: uuid.New().String(),
	}, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestHandlePaymentNotificationTransitions(t *testing.T) {
	tests := []struct {
		name              string
		transactionStatus string
		fraudStatus       string
		want              string
	}{
		{name: "capture accepted", transactionStatus: "capture", fraudStatus: "accept", want: domain.SubscriptionActive},
		{name: "capture challenged stays pending", transactionStatus: "capture", fraudStatus: "challenge", want: domain.SubscriptionPending},
		{name: "settlement", transactionStatus: "settlement", want: domain.SubscriptionActive},
		{name: "deny", transactionStatus: "deny", want: domain.SubscriptionCancelled},
		{name: "cancel", transactionStatus: "cancel", want: domain.SubscriptionCancelled},
		{name: "expire", transactionStatus: "expire", want: domain.SubscriptionExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repository, db := newTestService(t)
			ctx := context.Background()

			fitnessPlan := createPlan(t, db, 49.99)
			orderID := fmt.Sprintf("FITPRO-%s", uuid.New().String())
			require.NoError(t, repository.CreateSubscription(ctx, &entities.Subscription{
				ID:      uuid.New(),
				UserID:  uuid.New(),
				PlanID:  fitnessPlan.ID,
				Status:  domain.SubscriptionPending,
				OrderID: orderID,
			}))

			err := service.HandlePaymentNotification(ctx, domain.PaymentNotificationRequest{
				OrderID:           orderID,
				TransactionStatus: tt.transactionStatus,
				FraudStatus:       tt.fraudStatus,
			})
			require.NoError(t, err)

			stored, err := repository.GetSubscriptionByOrderID(ctx, orderID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stored.Status)
		})
	}
}

func TestHandlePaymentNotificationUnknownOrder(t *testing.T) {
	service, _, _ := newTestService(t)

	err := service.HandlePaymentNotification(context.Background(), domain.PaymentNotificationRequest{
		OrderID:           "FITPRO-unknown",
		TransactionStatus: "settlement",
	})
	assert.ErrorIs(t, err, domain.ErrSubscriptionNotFound)
}

func TestGetSubscriptionsIncludesPlanTitle(t *testing.T) {
	service, _, db := newTestService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	fitnessPlan := createPlan(t, db, 0)

	_, err := service.Subscribe(ctx, domain.SubscribeRequest{PlanID: fitnessPlan.ID.String()}, userID)
	require.NoError(t, err)

	subscriptions, err := service.GetSubscriptions(ctx, userID)
	require.NoError(t, err)
	require.Len(t, subscriptions, 1)
	assert.Equal(t, "Full Body Strength", subscriptions[0].PlanTitle)
	assert.Equal(t, domain.SubscriptionActive, subscriptions[0].Status)

	other, err := service.GetSubscriptions(ctx, uuid.New().String())
	require.NoError(t, err)
	assert.Empty(t, other)
}
