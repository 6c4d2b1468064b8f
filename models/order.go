package models

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

// Typical progression is Processing → Confirmed → Preparing →
// OutForDelivery → Delivered, but no transition graph is enforced;
// Cancelled may follow any non-terminal state.
const (
	StatusProcessing     OrderStatus = "Processing"
	StatusConfirmed      OrderStatus = "Confirmed"
	StatusPreparing      OrderStatus = "Preparing"
	StatusOutForDelivery OrderStatus = "OutForDelivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"
)

func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case StatusProcessing, StatusConfirmed, StatusPreparing,
		StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCard           PaymentMethod = "Card"
	PaymentCashOnDelivery PaymentMethod = "CashOnDelivery"
)

func ValidPaymentMethod(m PaymentMethod) bool {
	return m == PaymentCard || m == PaymentCashOnDelivery
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentPaid      PaymentStatus = "Paid"
	PaymentCancelled PaymentStatus = "Cancelled"
)

func ValidPaymentStatus(s PaymentStatus) bool {
	return s == PaymentPending || s == PaymentPaid || s == PaymentCancelled
}

type Order struct {
	gorm.Model
	OrderNumber     string        `json:"orderNumber" gorm:"uniqueIndex;not null"`
	UserID          uint          `json:"userId" gorm:"not null;index"`
	User            *User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items           []OrderItem   `json:"items" gorm:"foreignKey:OrderID"`
	TotalPrice      float64       `json:"totalPrice"`
	DeliveryAddress Address       `json:"deliveryAddress" gorm:"embedded;embeddedPrefix:delivery_"`
	DeliveryDate    time.Time     `json:"deliveryDate"`
	DeliveryTime    string        `json:"deliveryTime"`
	Status          OrderStatus   `json:"status" gorm:"not null;default:'Processing'"`
	PaymentMethod   PaymentMethod `json:"paymentMethod" gorm:"not null"`
	PaymentStatus   PaymentStatus `json:"paymentStatus" gorm:"not null;default:'Pending'"`
}

type OrderItem struct {
	gorm.Model
	OrderID  uint  `json:"-" gorm:"not null;index"`
	MealID   uint  `json:"mealId" gorm:"not null"`
	Meal     *Meal `json:"meal,omitempty" gorm:"foreignKey:MealID"`
	Quantity int   `json:"quantity" gorm:"not null"`
}
