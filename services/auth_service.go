package services

import (
	"errors"

	"github.com/ProDexortie/zdorovoeda/config"
	"github.com/ProDexortie/zdorovoeda/models"
	"github.com/ProDexortie/zdorovoeda/utils"

	"gorm.io/gorm"
)

// RegisterUser creates an account with a hashed password and the
// default user role. Preferences stay unset until the first profile
// update that provides them.
func RegisterUser(name, email, password string) (*models.User, error) {
	var existing models.User
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     models.RoleUser,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func AuthenticateUser(email, password string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrBadCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrBadCredentials
	}
	return &user, nil
}

func GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ProfilePatch carries the updatable profile fields; omitted fields
// keep their stored value. Address and dietary preferences are
// replaced as whole blocks when provided.
type ProfilePatch struct {
	Name               *string
	Email              *string
	Password           *string
	Address            *models.Address
	DietaryPreferences *models.DietaryPreferences
}

func UpdateUserProfile(userID uint, patch ProfilePatch) (*models.User, error) {
	user, err := GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil && *patch.Name != "" {
		user.Name = *patch.Name
	}
	if patch.Email != nil && *patch.Email != "" {
		user.Email = *patch.Email
	}
	if patch.Password != nil && *patch.Password != "" {
		hashed, err := utils.HashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}
	if patch.Address != nil {
		user.Address = *patch.Address
	}
	if patch.DietaryPreferences != nil {
		prefs := *patch.DietaryPreferences
		if prefs.TargetCalories <= 0 {
			prefs.TargetCalories = models.DefaultTargetCalories
		}
		user.DietaryPreferences = &prefs
	}

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
