package controllers

import (
	"net/http"
	"strconv"

	"github.com/ProDexortie/zdorovoeda/services"
	"github.com/ProDexortie/zdorovoeda/utils"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads the :id path segment as an entity identifier.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func ListMeals(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := services.NewMealService().List(c.Query("keyword"), page)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func GetMeal(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}

	meal, err := services.NewMealService().Get(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func GetRecommendations(c *gin.Context) {
	plan, err := services.NewRecommendationService().Recommend(c.GetUint("userID"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

type CreateMealInput struct {
	Name              string   `json:"name" binding:"required"`
	Description       string   `json:"description" binding:"required"`
	ImageUrl          string   `json:"imageUrl"`
	ImageBase64       string   `json:"imageBase64"`
	Calories          *float64 `json:"calories" binding:"required,gte=0"`
	Protein           *float64 `json:"protein" binding:"required,gte=0"`
	Carbs             *float64 `json:"carbs" binding:"required,gte=0"`
	Fat               *float64 `json:"fat" binding:"required,gte=0"`
	Ingredients       []string `json:"ingredients" binding:"required,min=1"`
	DietaryCategories []string `json:"dietaryCategories"`
	MealType          string   `json:"mealType" binding:"required,oneof=Breakfast Lunch Dinner Snack"`
	PreparationTime   *int     `json:"preparationTime" binding:"required,gt=0"`
	Price             *float64 `json:"price" binding:"required,gte=0"`
}

func CreateMeal(c *gin.Context) {
	var input CreateMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageUrl := input.ImageUrl
	if input.ImageBase64 != "" {
		url, err := utils.UploadMealImage(input.ImageBase64, input.Name)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		imageUrl = url
	}

	meal, err := services.NewMealService().Create(services.CreateMealInput{
		Name:              input.Name,
		Description:       input.Description,
		ImageUrl:          imageUrl,
		Calories:          *input.Calories,
		Protein:           *input.Protein,
		Carbs:             *input.Carbs,
		Fat:               *input.Fat,
		Ingredients:       input.Ingredients,
		DietaryCategories: input.DietaryCategories,
		MealType:          input.MealType,
		PreparationTime:   *input.PreparationTime,
		Price:             *input.Price,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

type UpdateMealInput struct {
	Name              *string   `json:"name"`
	Description       *string   `json:"description"`
	ImageUrl          *string   `json:"imageUrl"`
	ImageBase64       string    `json:"imageBase64"`
	Calories          *float64  `json:"calories" binding:"omitempty,gte=0"`
	Protein           *float64  `json:"protein" binding:"omitempty,gte=0"`
	Carbs             *float64  `json:"carbs" binding:"omitempty,gte=0"`
	Fat               *float64  `json:"fat" binding:"omitempty,gte=0"`
	Ingredients       *[]string `json:"ingredients" binding:"omitempty,min=1"`
	DietaryCategories *[]string `json:"dietaryCategories"`
	MealType          *string   `json:"mealType" binding:"omitempty,oneof=Breakfast Lunch Dinner Snack"`
	PreparationTime   *int      `json:"preparationTime" binding:"omitempty,gt=0"`
	Price             *float64  `json:"price" binding:"omitempty,gte=0"`
	Available         *bool     `json:"available"`
}

func UpdateMeal(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}

	var input UpdateMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageUrl := input.ImageUrl
	if input.ImageBase64 != "" {
		url, err := utils.UploadMealImage(input.ImageBase64, c.Param("id"))
		if err != nil {
			handleServiceError(c, err)
			return
		}
		imageUrl = &url
	}

	meal, err := services.NewMealService().Update(id, services.MealPatch{
		Name:              input.Name,
		Description:       input.Description,
		ImageUrl:          imageUrl,
		Calories:          input.Calories,
		Protein:           input.Protein,
		Carbs:             input.Carbs,
		Fat:               input.Fat,
		Ingredients:       input.Ingredients,
		DietaryCategories: input.DietaryCategories,
		MealType:          input.MealType,
		PreparationTime:   input.PreparationTime,
		Price:             input.Price,
		Available:         input.Available,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func DeleteMeal(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}

	if err := services.NewMealService().Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal removed"})
}
