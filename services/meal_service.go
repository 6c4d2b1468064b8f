package services

import (
	"errors"
	"math"

	"github.com/ProDexortie/zdorovoeda/config"
	"github.com/ProDexortie/zdorovoeda/models"

	"gorm.io/gorm"
)

const mealPageSize = 10

type MealService struct{}

func NewMealService() *MealService {
	return &MealService{}
}

// MealPage is one page of the catalog listing.
type MealPage struct {
	Meals []models.Meal `json:"meals"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
}

// List returns a page of meals, optionally filtered by a
// case-insensitive name keyword.
func (s *MealService) List(keyword string, page int) (*MealPage, error) {
	if page < 1 {
		page = 1
	}

	query := config.DB.Model(&models.Meal{})
	if keyword != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+keyword+"%")
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, err
	}

	var meals []models.Meal
	err := query.
		Limit(mealPageSize).
		Offset(mealPageSize * (page - 1)).
		Find(&meals).Error
	if err != nil {
		return nil, err
	}

	return &MealPage{
		Meals: meals,
		Page:  page,
		Pages: int(math.Ceil(float64(count) / float64(mealPageSize))),
	}, nil
}

func (s *MealService) Get(id uint) (*models.Meal, error) {
	var meal models.Meal
	if err := config.DB.First(&meal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}

type CreateMealInput struct {
	Name              string
	Description       string
	ImageUrl          string
	Calories          float64
	Protein           float64
	Carbs             float64
	Fat               float64
	Ingredients       []string
	DietaryCategories []string
	MealType          string
	PreparationTime   int
	Price             float64
}

// Create adds a catalog entry. New meals are always available; the
// flag is toggled through Update.
func (s *MealService) Create(input CreateMealInput) (*models.Meal, error) {
	meal := models.Meal{
		Name:              input.Name,
		Description:       input.Description,
		ImageUrl:          input.ImageUrl,
		Calories:          input.Calories,
		Protein:           input.Protein,
		Carbs:             input.Carbs,
		Fat:               input.Fat,
		Ingredients:       input.Ingredients,
		DietaryCategories: input.DietaryCategories,
		MealType:          input.MealType,
		PreparationTime:   input.PreparationTime,
		Price:             input.Price,
		Available:         true,
	}
	if err := config.DB.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// MealPatch carries the updatable fields; only non-nil fields
// overwrite the stored value.
type MealPatch struct {
	Name              *string
	Description       *string
	ImageUrl          *string
	Calories          *float64
	Protein           *float64
	Carbs             *float64
	Fat               *float64
	Ingredients       *[]string
	DietaryCategories *[]string
	MealType          *string
	PreparationTime   *int
	Price             *float64
	Available         *bool
}

func (s *MealService) Update(id uint, patch MealPatch) (*models.Meal, error) {
	meal, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		meal.Name = *patch.Name
	}
	if patch.Description != nil {
		meal.Description = *patch.Description
	}
	if patch.ImageUrl != nil {
		meal.ImageUrl = *patch.ImageUrl
	}
	if patch.Calories != nil {
		meal.Calories = *patch.Calories
	}
	if patch.Protein != nil {
		meal.Protein = *patch.Protein
	}
	if patch.Carbs != nil {
		meal.Carbs = *patch.Carbs
	}
	if patch.Fat != nil {
		meal.Fat = *patch.Fat
	}
	if patch.Ingredients != nil {
		meal.Ingredients = *patch.Ingredients
	}
	if patch.DietaryCategories != nil {
		meal.DietaryCategories = *patch.DietaryCategories
	}
	if patch.MealType != nil {
		meal.MealType = *patch.MealType
	}
	if patch.PreparationTime != nil {
		meal.PreparationTime = *patch.PreparationTime
	}
	if patch.Price != nil {
		meal.Price = *patch.Price
	}
	if patch.Available != nil {
		meal.Available = *patch.Available
	}

	if err := config.DB.Save(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) Delete(id uint) error {
	meal, err := s.Get(id)
	if err != nil {
		return err
	}
	return config.DB.Delete(meal).Error
}
