package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSubscribe        = "subscription created successfully"
	MessageSuccessGetSubscriptions = "subscriptions retrieved successfully"
	MessageSuccessWebhook          = "payment notification processed"

	MessageFailedSubscribe        = "failed to create subscription"
	MessageFailedGetSubscriptions = "failed to retrieve subscriptions"
	MessageFailedWebhook          = "failed to process payment notification"

	ErrAlreadySubscribed    = errors.New("already subscribed to this plan")
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

const (
	SubscriptionPending   = "Pending"
	SubscriptionActive    = "Active"
	SubscriptionCancelled = "Cancelled"
	SubscriptionExpired   = "Expired"
)

type (
	SubscribeRequest struct {
		PlanID string `json:"plan_id" validate:"required,uuid"`
	}

	SubscribeResponse struct {
		SubscriptionID string `json:"subscription_id"`
		OrderID        string `json:"order_id"`
		Status         string `json:"status"`
		PaymentURL     string `json:"payment_url,omitempty"`
		Token          string `json:"token,omitempty"`
	}

	SubscriptionResponse struct {
		ID        string    `json:"id"`
		PlanID    string    `json:"plan_id"`
		PlanTitle string    `json:"plan_title"`
		Status    string    `json:"status"`
		OrderID   string    `json:"order_id"`
		CreatedAt time.Time `json:"created_at"`
	}

	PaymentNotificationRequest struct {
		OrderID           string `json:"order_id" validate:"required"`
		TransactionStatus string `json:"transaction_status" validate:"required"`
		FraudStatus       string `json:"fraud_status"`
	}
)
