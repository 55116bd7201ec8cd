package user

import (
	"FitnessPro-Backend/domain"
	"FitnessPro-Backend/entities"
	"FitnessPro-Backend/pkg/jwt"
	"context"
	"fmt"
	"testing"

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
	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.Notification{}))
	return db
}

func newTestService(t *testing.T) (UserService, UserRepository) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	repository := NewUserRepository(setupTestDB(t))
	return NewUserService(repository, jwt.NewJWTService(), nil), repository
}

func registerRequest() domain.RegisterRequest {
	return domain.RegisterRequest{
		Name:     "Jamie Doe",
		Email:    "jamie@example.com",
		Password: "s3cret-password",
	}
}

func TestRegisterCreatesUserAndWelcomeNotification(t *testing.T) {
	service, repository := newTestService(t)
	ctx := context.Background()

	res, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "jamie@example.com", res.Email)
	assert.Equal(t, domain.RoleUser, res.Role)

	stored, err := repository.GetUserByEmail(ctx, "jamie@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", stored.Password)

	notifications, err := repository.GetNotifications(ctx, res.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Welcome to FitnessPro!", notifications[0].Title)
	assert.False(t, notifications[0].IsRead)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = service.Register(ctx, registerRequest())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	res, err := service.Login(ctx, domain.LoginRequest{
		Email:    "jamie@example.com",
		Password: "s3cret-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, domain.RoleUser, res.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = service.Login(ctx, domain.LoginRequest{
		Email:    "jamie@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestReadNotificationScopedToOwner(t *testing.T) {
	service, repository := newTestService(t)
	ctx := context.Background()

	res, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	notifications, err := repository.GetNotifications(ctx, res.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	notificationID := notifications[0].ID.String()

	other, err := service.Register(ctx, domain.RegisterRequest{
		Name:     "Other",
		Email:    "other@example.com",
		Password: "another-password",
	})
	require.NoError(t, err)

	err = service.ReadNotification(ctx, notificationID, other.ID)
	assert.ErrorIs(t, err, domain.ErrNotificationNotFound)

	require.NoError(t, service.ReadNotification(ctx, notificationID, res.ID))

	notifications, err = repository.GetNotifications(ctx, res.ID)
	require.NoError(t, err)
	assert.True(t, notifications[0].IsRead)
}
