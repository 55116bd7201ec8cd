package subscription

import (
	"FitnessPro-Backend/domain"
	"FitnessPro-Backend/entities"
	"FitnessPro-Backend/internal/utils"
	"FitnessPro-Backend/pkg/plan"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	SubscriptionService interface {
		Subscribe(ctx context.Context, req domain.SubscribeRequest, userID string) (domain.SubscribeResponse, error)
		GetSubscriptions(ctx context.Context, userID string) ([]domain.SubscriptionResponse, error)
		HandlePaymentNotification(ctx context.Context, req domain.PaymentNotificationRequest) error
	}

	subscriptionService struct {
		subscriptionRepository SubscriptionRepository
		planRepository         plan.PlanRepository
		snapClient             snap.Client
	}
)

func NewSubscriptionService(subscriptionRepository SubscriptionRepository, planRepository plan.PlanRepository) SubscriptionService {
	env := midtrans.Sandbox
	if utils.GetConfig("IS_PROD") == "true" {
		env = midtrans.Production
	}

	var snapClient snap.Client
	snapClient.New(utils.GetConfig("SERVER_KEY"), env)

	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
		planRepository:         planRepository,
		snapClient:             snapClient,
	}
}

func (s *subscriptionService) Subscribe(ctx context.Context, req domain.SubscribeRequest, userID string) (domain.SubscribeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SubscribeResponse{}, domain.ErrParseUUID
	}

	fitnessPlan, err := s.planRepository.GetPlanByID(ctx, req.PlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SubscribeResponse{}, domain.ErrPlanNotFound
		}
		return domain.SubscribeResponse{}, err
	}

	open, err := s.subscriptionRepository.HasOpenSubscription(ctx, userID, req.PlanID)
	if err != nil {
		return domain.SubscribeResponse{}, err
	}
	if open {
		return domain.SubscribeResponse{}, domain.ErrAlreadySubscribed
	}

	subscription := &entities.Subscription{
		ID:      uuid.New(),
		UserID:  userUUID,
		PlanID:  fitnessPlan.ID,
		Status:  domain.SubscriptionPending,
		OrderID: fmt.Sprintf("FITPRO-%s", uuid.New().String()),
	}

	// Free plans activate without going through payment.
	if fitnessPlan.Price == 0 {
		subscription.Status = domain.SubscriptionActive
		if err := s.subscriptionRepository.CreateSubscription(ctx, subscription); err != nil {
			return domain.SubscribeResponse{}, err
		}
		return domain.SubscribeResponse{
			SubscriptionID: subscription.ID.String(),
			OrderID:        subscription.OrderID,
			Status:         subscription.Status,
		}, nil
	}

	if err := s.subscriptionRepository.CreateSubscription(ctx, subscription); err != nil {
		return domain.SubscribeResponse{}, err
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  subscription.OrderID,
			GrossAmt: int64(fitnessPlan.Price),
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    fitnessPlan.ID.String(),
				Name:  fitnessPlan.Title,
				Price: int64(fitnessPlan.Price),
				Qty:   1,
			},
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		subscription.Status = domain.SubscriptionCancelled
		_ = s.subscriptionRepository.UpdateSubscription(ctx, subscription)
		return domain.SubscribeResponse{}, snapErr
	}

	return domain.SubscribeResponse{
		SubscriptionID: subscription.ID.String(),
		OrderID:        subscription.OrderID,
		Status:         subscription.Status,
		PaymentURL:     snapResp.RedirectURL,
		Token:          snapResp.Token,
	}, nil
}

func (s *subscriptionService) GetSubscriptions(ctx context.Context, userID string) ([]domain.SubscriptionResponse, error) {
	subscriptions, err := s.subscriptionRepository.GetSubscriptions(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.SubscriptionResponse, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		planTitle := ""
		if subscription.Plan != nil {
			planTitle = subscription.Plan.Title
		}
		response = append(response, domain.SubscriptionResponse{
			ID:        subscription.ID.String(),
			PlanID:    subscription.PlanID.String(),
			PlanTitle: planTitle,
			Status:    subscription.Status,
			OrderID:   subscription.OrderID,
			CreatedAt: subscription.CreatedAt,
		})
	}

	return response, nil
}

func (s *subscriptionService) HandlePaymentNotification(ctx context.Context, req domain.PaymentNotificationRequest) error {
	subscription, err := s.subscriptionRepository.GetSubscriptionByOrderID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSubscriptionNotFound
		}
		return err
	}

	switch req.TransactionStatus {
	case "capture":
		if req.FraudStatus == "accept" {
			subscription.Status = domain.SubscriptionActive
		}
	case "settlement":
		subscription.Status = domain.SubscriptionActive
	case "deny", "cancel":
		subscription.Status = domain.SubscriptionCancelled
	case "expire":
		subscription.Status = domain.SubscriptionExpired
	}

	return s.subscriptionRepository.UpdateSubscription(ctx, subscription)
}
