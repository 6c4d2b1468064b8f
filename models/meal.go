package models

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Meal types the catalog recognizes. Recommendation buckets are keyed
// by these values; anything else falls out of the plan.
const (
	MealTypeBreakfast = "Breakfast"
	MealTypeLunch     = "Lunch"
	MealTypeDinner    = "Dinner"
	MealTypeSnack     = "Snack"
)

// Dietary category tags a meal can carry and a user can restrict to.
const (
	CategoryVegan       = "Vegan"
	CategoryVegetarian  = "Vegetarian"
	CategoryGlutenFree  = "GlutenFree"
	CategoryLactoseFree = "LactoseFree"
	CategoryNutFree     = "NutFree"
	CategorySeafoodFree = "SeafoodFree"
)

// StringList stores a list of strings as one comma-joined TEXT column
// while marshaling to a plain JSON array.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return strings.Join(l, ","), nil
}

func (l *StringList) Scan(value interface{}) error {
	var s string
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
	if s == "" {
		*l = nil
		return nil
	}
	*l = strings.Split(s, ",")
	return nil
}

type Meal struct {
	gorm.Model
	Name              string     `json:"name" gorm:"not null"`
	Description       string     `json:"description"`
	ImageUrl          string     `json:"imageUrl"`
	Calories          float64    `json:"calories"`
	Protein           float64    `json:"protein"`
	Carbs             float64    `json:"carbs"`
	Fat               float64    `json:"fat"`
	Ingredients       StringList `json:"ingredients" gorm:"type:text"`
	DietaryCategories StringList `json:"dietaryCategories" gorm:"type:text"`
	MealType          string     `json:"mealType" gorm:"not null;index"`
	PreparationTime   int        `json:"preparationTime"`
	Price             float64    `json:"price"`
	Available         bool       `json:"available" gorm:"not null"`
}
