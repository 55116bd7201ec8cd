package handlers

import (
	"FitnessPro-Backend/domain"
	"FitnessPro-Backend/entities"
	"FitnessPro-Backend/internal/middleware"
	"FitnessPro-Backend/internal/utils"
	"FitnessPro-Backend/pkg/jwt"
	"FitnessPro-Backend/pkg/nutrition"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type nutritionTestApp struct {
	app        *fiber.App
	jwtService jwt.JWTService
}

func newNutritionTestApp(t *testing.T) *nutritionTestApp {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.NutritionLog{}))

	utils.InitValidator()
	jwtService := jwt.NewJWTService()

	nutritionService := nutrition.NewNutritionService(nutrition.NewNutritionRepository(db))
	handler := NewNutritionHandler(nutritionService, utils.Validate)

	app := fiber.New()
	m := middleware.NewMiddleware()
	group := app.Group("/api/v1/nutrition", m.AuthMiddleware(jwtService))
	group.Get("", handler.GetNutritionLogs)
	group.Post("", handler.CreateNutritionLog)
	group.Put("", handler.UpdateNutritionLog)
	group.Delete("", handler.DeleteNutritionLog)

	return &nutritionTestApp{app: app, jwtService: jwtService}
}

func (a *nutritionTestApp) request(t *testing.T, method, target, token, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *http.Response, target any) {
	t.Helper()

	var envelope struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	if target != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, target))
	}
}

const bananaBody = `{"foodName":"Banana","calories":105,"protein":1,"carbs":27,"fats":0.3,"quantity":1,"unit":"medium","mealType":"BREAKFAST"}`

func TestNutritionUnauthorized(t *testing.T) {
	testApp := newNutritionTestApp(t)

	for _, method := range []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete} {
		resp := testApp.request(t, method, "/api/v1/nutrition", "", "")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, method)
	}
}

func TestNutritionCreateAndAggregate(t *testing.T) {
	testApp := newNutritionTestApp(t)
	token := testApp.jwtService.GenerateTokenUser(uuid.New().String(), domain.RoleUser)

	resp := testApp.request(t, fiber.MethodPost, "/api/v1/nutrition", token, bananaBody)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created domain.NutritionLogResponse
	decodeData(t, resp, &created)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.LoggedAt.IsZero())

	resp = testApp.request(t, fiber.MethodGet, "/api/v1/nutrition", token, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var logs domain.NutritionLogsResponse
	decodeData(t, resp, &logs)
	require.Len(t, logs.Logs, 1)
	assert.InDelta(t, 105, logs.Totals.Calories, 1e-9)
	require.Len(t, logs.MealGroups[domain.MealBreakfast], 1)
	assert.Equal(t, "Banana", logs.MealGroups[domain.MealBreakfast][0].FoodName)
	assert.Empty(t, logs.MealGroups[domain.MealLunch])
}

func TestNutritionCreateValidation(t *testing.T) {
	testApp := newNutritionTestApp(t)
	token := testApp.jwtService.GenerateTokenUser(uuid.New().String(), domain.RoleUser)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing foodName", body: `{"calories":105,"protein":1,"carbs":27,"fats":0.3,"quantity":1,"unit":"medium","mealType":"BREAKFAST"}`},
		{name: "missing calories", body: `{"foodName":"Banana","protein":1,"carbs":27,"fats":0.3,"quantity":1,"unit":"medium","mealType":"BREAKFAST"}`},
		{name: "bad meal type", body: `{"foodName":"Banana","calories":105,"protein":1,"carbs":27,"fats":0.3,"quantity":1,"unit":"medium","mealType":"BRUNCH"}`},
		{name: "negative calories", body: `{"foodName":"Banana","calories":-5,"protein":1,"carbs":27,"fats":0.3,"quantity":1,"unit":"medium","mealType":"BREAKFAST"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := testApp.request(t, fiber.MethodPost, "/api/v1/nutrition", token, tt.body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestNutritionPartialUpdate(t *testing.T) {
	testApp := newNutritionTestApp(t)
	token := testApp.jwtService.GenerateTokenUser(uuid.New().String(), domain.RoleUser)

	resp := testApp.request(t, fiber.MethodPost, "/api/v1/nutrition", token, bananaBody)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created domain.NutritionLogResponse
	decodeData(t, resp, &created)

	resp = testApp.request(t, fiber.MethodPut, "/api/v1/nutrition?id="+created.ID, token, `{"calories":120}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated domain.NutritionLogResponse
	decodeData(t, resp, &updated)
	assert.InDelta(t, 120, updated.Calories, 1e-9)
	assert.Equal(t, "Banana", updated.FoodName)
	assert.Equal(t, domain.MealBreakfast, updated.MealType)
}

func TestNutritionUpdateMissingID(t *testing.T) {
	testApp := newNutritionTestApp(t)
	token := testApp.jwtService.GenerateTokenUser(uuid.New().String(), domain.RoleUser)

	resp := testApp.request(t, fiber.MethodPut, "/api/v1/nutrition", token, `{"calories":120}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = testApp.request(t, fiber.MethodDelete, "/api/v1/nutrition", token, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestNutritionDelete(t *testing.T) {
	testApp := newNutritionTestApp(t)
	token := testApp.jwtService.GenerateTokenUser(uuid.New().String(), domain.RoleUser)

	resp := testApp.request(t, fiber.MethodPost, "/api/v1/nutrition", token, bananaBody)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created domain.NutritionLogResponse
	decodeData(t, resp, &created)

	resp = testApp.request(t, fiber.MethodDelete, "/api/v1/nutrition?id="+created.ID, token, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = testApp.request(t, fiber.MethodDelete, "/api/v1/nutrition?id="+created.ID, token, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestNutritionCrossUserNotFound(t *testing.T) {
	testApp := newNutritionTestApp(t)
	ownerToken := testApp.jwtService.GenerateTokenUser(uuid.New().String(), domain.RoleUser)
	otherToken := testApp.jwtService.GenerateTokenUser(uuid.New().String(), domain.RoleUser)

	resp := testApp.request(t, fiber.MethodPost, "/api/v1/nutrition", ownerToken, bananaBody)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created domain.NutritionLogResponse
	decodeData(t, resp, &created)

	resp = testApp.request(t, fiber.MethodPut, "/api/v1/nutrition?id="+created.ID, otherToken, `{"calories":1}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = testApp.request(t, fiber.MethodDelete, "/api/v1/nutrition?id="+created.ID, otherToken, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = testApp.request(t, fiber.MethodGet, "/api/v1/nutrition", otherToken, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var logs domain.NutritionLogsResponse
	decodeData(t, resp, &logs)
	assert.Empty(t, logs.Logs)
}

func TestNutritionHalfRangeRejected(t *testing.T) {
	testApp := newNutritionTestApp(t)
	token := testApp.jwtService.GenerateTokenUser(uuid.New().String(), domain.RoleUser)

	resp := testApp.request(t, fiber.MethodGet, "/api/v1/nutrition?startDate=2025-06-01", token, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
