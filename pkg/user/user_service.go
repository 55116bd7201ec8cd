package user

import (
	"FitnessPro-Backend/domain"
	"FitnessPro-Backend/entities"
	"FitnessPro-Backend/internal/utils/mailing"
	"FitnessPro-Backend/internal/utils/storage"
	"FitnessPro-Backend/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) error
		UploadProfilePicture(ctx context.Context, req domain.UploadProfilePictureRequest, userID string) error
		GetNotifications(ctx context.Context, userID string) ([]domain.NotificationResponse, error)
		ReadNotification(ctx context.Context, id string, userID string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	exists, err := s.userRepository.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return domain.RegisterResponse{}, err
	}
	if exists {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     domain.RoleUser,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	notification := &entities.Notification{
		ID:      uuid.New(),
		UserID:  user.ID,
		Title:   "Welcome to FitnessPro!",
		Message: "Welcome to your fitness journey! Complete your profile and start exploring our workout plans.",
		Type:    "GENERAL",
	}
	if err := s.userRepository.CreateNotification(ctx, notification); err != nil {
		return domain.RegisterResponse{}, err
	}

	go func() {
		body := fmt.Sprintf("<p>Hi %s,</p><p>Welcome to FitnessPro! Your account is ready.</p>", user.Name)
		if err := mailing.SendMail(user.Email, "Welcome to FitnessPro", body); err != nil {
			log.Printf("Error sending welcome email: %v", err)
		}
	}()

	return domain.RegisterResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return domain.LoginResponse{
		Token: token,
		Role:  user.Role,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return domain.UserResponse{
		ID:             user.ID.String(),
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role,
		ProfilePicture: user.ProfilePicture,
		CreatedAt:      user.CreatedAt,
	}, nil
}

func (s *userService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if req.Name != "" {
		user.Name = req.Name
	}

	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) UploadProfilePicture(ctx context.Context, req domain.UploadProfilePictureRequest, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	fileName := fmt.Sprintf("profile-%s", user.ID.String())
	var objectKey string
	var uploadErr error

	if user.ProfilePicture != "" {
		existingKey := s.s3.GetObjectKeyFromLink(user.ProfilePicture)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Picture, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Picture, "profiles", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Picture, "profiles", storage.AllowImage...)
	}
	if uploadErr != nil {
		return uploadErr
	}

	user.ProfilePicture = s.s3.GetPublicLinkKey(objectKey)

	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) GetNotifications(ctx context.Context, userID string) ([]domain.NotificationResponse, error) {
	notifications, err := s.userRepository.GetNotifications(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		response = append(response, domain.NotificationResponse{
			ID:        n.ID.String(),
			Title:     n.Title,
			Message:   n.Message,
			Type:      n.Type,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}

	return response, nil
}

func (s *userService) ReadNotification(ctx context.Context, id string, userID string) error {
	notification, err := s.userRepository.GetNotificationByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotificationNotFound
		}
		return err
	}

	notification.IsRead = true
	return s.userRepository.UpdateNotification(ctx, notification)
}
