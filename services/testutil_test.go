package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/ProDexortie/zdorovoeda/config"
	"github.com/ProDexortie/zdorovoeda/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the global config.DB at a fresh in-memory sqlite
// database for one test.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.Order{},
		&models.OrderItem{},
	))

	config.DB = db
}

func createTestUser(t *testing.T, email string, prefs *models.DietaryPreferences) models.User {
	t.Helper()

	user := models.User{
		Name:               "Test User",
		Email:              email,
		Password:           "hashed",
		Role:               models.RoleUser,
		DietaryPreferences: prefs,
	}
	require.NoError(t, config.DB.Create(&user).Error)
	return user
}

type testMeal struct {
	name       string
	mealType   string
	calories   float64
	price      float64
	available  bool
	categories []string
}

func createTestMeal(t *testing.T, m testMeal) models.Meal {
	t.Helper()

	meal := models.Meal{
		Name:              m.name,
		Description:       "test meal",
		Calories:          m.calories,
		Ingredients:       models.StringList{"ingredient"},
		DietaryCategories: models.StringList(m.categories),
		MealType:          m.mealType,
		PreparationTime:   15,
		Price:             m.price,
		Available:         m.available,
	}
	require.NoError(t, config.DB.Create(&meal).Error)
	return meal
}

func testDelivery() DeliveryInfo {
	return DeliveryInfo{
		Address: models.Address{Street: "Lenina 1", City: "Moscow", ZipCode: "101000", Country: "Russia"},
		Date:    time.Now().Add(24 * time.Hour),
		Time:    "12:00-14:00",
	}
}
