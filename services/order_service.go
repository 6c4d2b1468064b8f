package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ProDexortie/zdorovoeda/config"
	"github.com/ProDexortie/zdorovoeda/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderService struct{}

func NewOrderService() *OrderService {
	return &OrderService{}
}

// OrderItemRequest is one cart line: a meal reference and a quantity.
// Any price the client sends alongside is never read.
type OrderItemRequest struct {
	MealID   uint `json:"meal"`
	Quantity int  `json:"quantity"`
}

type DeliveryInfo struct {
	Address models.Address
	Date    time.Time
	Time    string
}

// Create validates every line item, computes the total from the stored
// meal prices and persists the order in a single write. A bad meal
// reference fails the whole order before anything touches the store.
func (s *OrderService) Create(userID uint, items []OrderItemRequest, delivery DeliveryInfo, paymentMethod models.PaymentMethod) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if !models.ValidPaymentMethod(paymentMethod) {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrBadInput, paymentMethod)
	}

	var totalPrice float64
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", ErrBadInput)
		}

		var meal models.Meal
		if err := config.DB.First(&meal, item.MealID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &MealNotFoundError{MealID: item.MealID}
			}
			return nil, err
		}

		totalPrice += meal.Price * float64(item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			MealID:   item.MealID,
			Quantity: item.Quantity,
		})
	}

	order := models.Order{
		OrderNumber:     uuid.NewString(),
		UserID:          userID,
		Items:           orderItems,
		TotalPrice:      totalPrice,
		DeliveryAddress: delivery.Address,
		DeliveryDate:    delivery.Date,
		DeliveryTime:    delivery.Time,
		Status:          models.StatusProcessing,
		PaymentMethod:   paymentMethod,
		PaymentStatus:   models.PaymentPending,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		return nil, err
	}

	var created models.Order
	err := config.DB.Preload("Items.Meal").First(&created, order.ID).Error
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID returns a populated order. Non-admin callers may only read
// their own orders; denial requires failing both the owner check and
// the role check.
func (s *OrderService) GetByID(orderID, callerID uint, callerRole string) (*models.Order, error) {
	var order models.Order
	err := config.DB.
		Preload("User").
		Preload("Items.Meal").
		First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if order.UserID != callerID && callerRole != models.RoleAdmin {
		return nil, ErrForbidden
	}
	return &order, nil
}

func (s *OrderService) ListByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := config.DB.
		Preload("Items.Meal").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (s *OrderService) ListAll() ([]models.Order, error) {
	var orders []models.Order
	err := config.DB.
		Preload("User").
		Preload("Items.Meal").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// SetStatus overwrites the order status. Transitions are deliberately
// permissive; the one business rule is that delivering a card order
// also marks it paid. Cash orders are confirmed paid separately.
func (s *OrderService) SetStatus(orderID uint, status models.OrderStatus) (*models.Order, error) {
	if status != "" && !models.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: unknown order status %q", ErrBadInput, status)
	}

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if status != "" {
		order.Status = status
	}
	if status == models.StatusDelivered && order.PaymentMethod == models.PaymentCard {
		order.PaymentStatus = models.PaymentPaid
	}

	if err := config.DB.Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// SetPaymentStatus overwrites the payment status with no derived side
// effects. Setting it on a cancelled order is allowed.
func (s *OrderService) SetPaymentStatus(orderID uint, status models.PaymentStatus) (*models.Order, error) {
	if status != "" && !models.ValidPaymentStatus(status) {
		return nil, fmt.Errorf("%w: unknown payment status %q", ErrBadInput, status)
	}

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if status != "" {
		order.PaymentStatus = status
	}

	if err := config.DB.Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
