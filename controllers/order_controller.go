package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/ProDexortie/zdorovoeda/config"
	"github.com/ProDexortie/zdorovoeda/models"
	"github.com/ProDexortie/zdorovoeda/services"
	"github.com/ProDexortie/zdorovoeda/utils"

	"github.com/gin-gonic/gin"
)

type CreateOrderInput struct {
	Meals           []services.OrderItemRequest `json:"meals" binding:"required"`
	DeliveryAddress models.Address              `json:"deliveryAddress"`
	DeliveryDate    time.Time                   `json:"deliveryDate" binding:"required"`
	DeliveryTime    string                      `json:"deliveryTime" binding:"required"`
	PaymentMethod   models.PaymentMethod        `json:"paymentMethod" binding:"required"`
}

func CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	order, err := services.NewOrderService().Create(userID, input.Meals, services.DeliveryInfo{
		Address: input.DeliveryAddress,
		Date:    input.DeliveryDate,
		Time:    input.DeliveryTime,
	}, input.PaymentMethod)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	// Best effort; the order stands even if the receipt mail fails.
	var user models.User
	if err := config.DB.First(&user, userID).Error; err == nil {
		if err := utils.SendOrderConfirmation(user.Email, order.OrderNumber, order.TotalPrice); err != nil {
			log.Printf("order confirmation email for %s failed: %v", order.OrderNumber, err)
		}
	}

	c.JSON(http.StatusCreated, order)
}

func GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	order, err := services.NewOrderService().GetByID(id, c.GetUint("userID"), c.GetString("role"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func GetMyOrders(c *gin.Context) {
	orders, err := services.NewOrderService().ListByUser(c.GetUint("userID"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func GetOrders(c *gin.Context) {
	orders, err := services.NewOrderService().ListAll()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

type OrderStatusInput struct {
	Status models.OrderStatus `json:"status"`
}

func UpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	var input OrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := services.NewOrderService().SetStatus(id, input.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type PaymentStatusInput struct {
	PaymentStatus models.PaymentStatus `json:"paymentStatus"`
}

func UpdateOrderPaymentStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	var input PaymentStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := services.NewOrderService().SetPaymentStatus(id, input.PaymentStatus)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
