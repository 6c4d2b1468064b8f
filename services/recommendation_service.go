package services

import (
	"errors"

	"github.com/ProDexortie/zdorovoeda/config"
	"github.com/ProDexortie/zdorovoeda/models"

	"gorm.io/gorm"
)

// recommendationLimit caps the candidate set before bucketing.
const recommendationLimit = 20

// calorieBandRatio widens the acceptance band to ±30% of the target so
// a single preference rarely empties the result set.
const calorieBandRatio = 0.3

// MealPlan buckets recommended meals by meal time.
type MealPlan struct {
	Breakfast []models.Meal `json:"breakfast"`
	Lunch     []models.Meal `json:"lunch"`
	Dinner    []models.Meal `json:"dinner"`
	Snacks    []models.Meal `json:"snacks"`
}

type RecommendationService struct{}

func NewRecommendationService() *RecommendationService {
	return &RecommendationService{}
}

// Recommend selects up to 20 available meals for the user's dietary
// preferences and buckets them by meal type.
//
// Preference criteria are optional (OR-joined): a meal qualifies when
// it falls inside the calorie band OR carries at least one of the
// user's restriction tags. If nothing matches, the criteria are
// discarded and any available meals are returned instead, so the plan
// is only empty when the catalog has nothing available.
func (s *RecommendationService) Recommend(userID uint) (*MealPlan, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	plan := &MealPlan{
		Breakfast: []models.Meal{},
		Lunch:     []models.Meal{},
		Dinner:    []models.Meal{},
		Snacks:    []models.Meal{},
	}

	prefs := user.DietaryPreferences
	if prefs == nil {
		return plan, nil
	}

	query := config.DB.Model(&models.Meal{}).Where("available = ?", true)

	var criteria *gorm.DB
	if prefs.TargetCalories > 0 {
		low := prefs.TargetCalories * (1 - calorieBandRatio)
		high := prefs.TargetCalories * (1 + calorieBandRatio)
		criteria = config.DB.Where("calories >= ? AND calories <= ?", low, high)
	}
	for _, restriction := range prefs.Restrictions {
		match := "%" + restriction + "%"
		if criteria == nil {
			criteria = config.DB.Where("dietary_categories LIKE ?", match)
		} else {
			criteria = criteria.Or("dietary_categories LIKE ?", match)
		}
	}
	if criteria != nil {
		query = query.Where(criteria)
	}

	var meals []models.Meal
	if err := query.Limit(recommendationLimit).Find(&meals).Error; err != nil {
		return nil, err
	}

	// Fallback: rather than recommend nothing, drop the preference
	// criteria and offer whatever is available.
	if len(meals) == 0 && criteria != nil {
		err := config.DB.
			Where("available = ?", true).
			Limit(recommendationLimit).
			Find(&meals).Error
		if err != nil {
			return nil, err
		}
	}

	for _, meal := range meals {
		switch meal.MealType {
		case models.MealTypeBreakfast:
			plan.Breakfast = append(plan.Breakfast, meal)
		case models.MealTypeLunch:
			plan.Lunch = append(plan.Lunch, meal)
		case models.MealTypeDinner:
			plan.Dinner = append(plan.Dinner, meal)
		case models.MealTypeSnack:
			plan.Snacks = append(plan.Snacks, meal)
		}
	}

	return plan, nil
}
