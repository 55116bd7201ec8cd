package nutrition

import (
	"FitnessPro-Backend/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateEmptyInput(t *testing.T) {
	totals, mealGroups := Aggregate(nil)

	assert.Equal(t, domain.NutritionTotals{}, totals)

	// Every meal type key is present even when no logs exist.
	assert.Len(t, mealGroups, 4)
	for _, mealType := range domain.MealTypes {
		group, ok := mealGroups[mealType]
		assert.True(t, ok, "missing meal group %s", mealType)
		assert.Empty(t, group)
	}
}

func TestAggregateTotals(t *testing.T) {
	logs := []domain.NutritionLogResponse{
		{FoodName: "Banana", Calories: 105, Protein: 1, Carbs: 27, Fats: 0.3, MealType: domain.MealBreakfast},
		{FoodName: "Chicken Salad", Calories: 350, Protein: 30, Carbs: 12, Fats: 18, MealType: domain.MealLunch},
		{FoodName: "Yogurt", Calories: 95, Protein: 9, Carbs: 7, Fats: 2.5, MealType: domain.MealSnack},
	}

	totals, _ := Aggregate(logs)

	assert.InDelta(t, 550, totals.Calories, 1e-9)
	assert.InDelta(t, 40, totals.Protein, 1e-9)
	assert.InDelta(t, 46, totals.Carbs, 1e-9)
	assert.InDelta(t, 20.8, totals.Fats, 1e-9)
}

func TestAggregateMealGroups(t *testing.T) {
	logs := []domain.NutritionLogResponse{
		{FoodName: "Oatmeal", MealType: domain.MealBreakfast},
		{FoodName: "Banana", MealType: domain.MealBreakfast},
		{FoodName: "Pasta", MealType: domain.MealDinner},
	}

	_, mealGroups := Aggregate(logs)

	assert.Len(t, mealGroups[domain.MealBreakfast], 2)
	assert.Len(t, mealGroups[domain.MealLunch], 0)
	assert.Len(t, mealGroups[domain.MealDinner], 1)
	assert.Len(t, mealGroups[domain.MealSnack], 0)

	// Relative order within a bucket follows the input order.
	assert.Equal(t, "Oatmeal", mealGroups[domain.MealBreakfast][0].FoodName)
	assert.Equal(t, "Banana", mealGroups[domain.MealBreakfast][1].FoodName)
	assert.Equal(t, "Pasta", mealGroups[domain.MealDinner][0].FoodName)
}
