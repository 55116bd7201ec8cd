package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister             = "user registered successfully"
	MessageSuccessLogin                = "login success"
	MessageSuccessGetMe                = "user profile retrieved successfully"
	MessageSuccessUpdateUser           = "user updated successfully"
	MessageSuccessUploadProfilePicture = "profile picture uploaded successfully"
	MessageSuccessGetNotifications     = "notifications retrieved successfully"
	MessageSuccessReadNotification     = "notification marked as read"

	MessageFailedRegister             = "failed to register user"
	MessageFailedLogin                = "failed to login"
	MessageFailedGetMe                = "failed to retrieve user profile"
	MessageFailedUpdateUser           = "failed to update user"
	MessageFailedUploadProfilePicture = "failed to upload profile picture"
	MessageFailedGetNotifications     = "failed to retrieve notifications"
	MessageFailedReadNotification     = "failed to mark notification as read"

	ErrUserNotFound         = errors.New("user not found")
	ErrEmailAlreadyExists   = errors.New("user with this email already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrNotificationNotFound = errors.New("notification not found")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Role      string    `json:"role"`
		CreatedAt time.Time `json:"created_at"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateUserRequest struct {
		Name string `json:"name" validate:"omitempty"`
	}

	UserResponse struct {
		ID             string    `json:"id"`
		Name           string    `json:"name"`
		Email          string    `json:"email"`
		Role           string    `json:"role"`
		ProfilePicture string    `json:"profile_picture,omitempty"`
		CreatedAt      time.Time `json:"created_at"`
	}

	UploadProfilePictureRequest struct {
		Picture *multipart.FileHeader `json:"picture" form:"picture" validate:"required"`
	}

	NotificationResponse struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		Message   string    `json:"message"`
		Type      string    `json:"type"`
		IsRead    bool      `json:"is_read"`
		CreatedAt time.Time `json:"created_at"`
	}
)
