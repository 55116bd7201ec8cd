package nutrition

import (
	"FitnessPro-Backend/domain"
)

// Aggregate sums the nutrition totals over logs and buckets them by meal
// type. Every meal type key is present in the groups map even when empty,
// and the relative order of logs within a bucket is preserved.
func Aggregate(logs []domain.NutritionLogResponse) (domain.NutritionTotals, map[string][]domain.NutritionLogResponse) {
	totals := domain.NutritionTotals{}

	mealGroups := make(map[string][]domain.NutritionLogResponse, len(domain.MealTypes))
	for _, mealType := range domain.MealTypes {
		mealGroups[mealType] = make([]domain.NutritionLogResponse, 0)
	}

	for _, log := range logs {
		totals.Calories += log.Calories
		totals.Protein += log.Protein
		totals.Carbs += log.Carbs
		totals.Fats += log.Fats

		mealGroups[log.MealType] = append(mealGroups[log.MealType], log)
	}

	return totals, mealGroups
}
