package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Nutrition goals a user can pick in their dietary preferences.
const (
	GoalWeightLoss    = "WeightLoss"
	GoalMuscleGain    = "MuscleGain"
	GoalMaintenance   = "Maintenance"
	GoalHealthyEating = "HealthyEating"
)

// DefaultTargetCalories is applied when preferences are saved without
// an explicit calorie target.
const DefaultTargetCalories = 2000

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// DietaryPreferences is stored as a single JSON column. A NULL column
// means the user never set preferences, which the recommendation
// engine treats differently from empty preferences.
type DietaryPreferences struct {
	TargetCalories float64  `json:"targetCalories"`
	Restrictions   []string `json:"restrictions"`
	Allergies      []string `json:"allergies"`
	Goal           string   `json:"goal"`
}

func (p *DietaryPreferences) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

func (p *DietaryPreferences) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into DietaryPreferences", value)
	}
	return json.Unmarshal(data, p)
}

type User struct {
	gorm.Model
	Name               string              `json:"name" gorm:"not null"`
	Email              string              `json:"email" gorm:"uniqueIndex;not null"`
	Password           string              `json:"-" gorm:"not null"`
	DietaryPreferences *DietaryPreferences `json:"dietaryPreferences,omitempty" gorm:"type:jsonb"`
	Address            Address             `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	Role               string              `json:"role" gorm:"not null;default:'user'"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
