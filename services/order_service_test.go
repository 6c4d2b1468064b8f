package services

import (
	"testing"
	"time"

	"github.com/ProDexortie/zdorovoeda/config"
	"github.com/ProDexortie/zdorovoeda/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderComputesTotalFromStoredPrices(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "buyer@example.com", nil)
	soup := createTestMeal(t, testMeal{name: "Soup", mealType: models.MealTypeLunch, calories: 300, price: 250.50, available: true})
	steak := createTestMeal(t, testMeal{name: "Steak", mealType: models.MealTypeDinner, calories: 700, price: 800, available: true})

	order, err := NewOrderService().Create(user.ID, []OrderItemRequest{
		{MealID: soup.ID, Quantity: 2},
		{MealID: steak.ID, Quantity: 1},
	}, testDelivery(), models.PaymentCard)
	require.NoError(t, err)

	assert.InDelta(t, 2*250.50+800, order.TotalPrice, 0.001)
	assert.Equal(t, models.StatusProcessing, order.Status)
	assert.Equal(t, models.PaymentPending, order.PaymentStatus)
	assert.NotEmpty(t, order.OrderNumber)
	require.Len(t, order.Items, 2)
	require.NotNil(t, order.Items[0].Meal)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "buyer@example.com", nil)
	_, err := NewOrderService().Create(user.ID, nil, testDelivery(), models.PaymentCard)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCreateOrderUnknownMealPersistsNothing(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "buyer@example.com", nil)
	soup := createTestMeal(t, testMeal{name: "Soup", mealType: models.MealTypeLunch, calories: 300, price: 250, available: true})

	_, err := NewOrderService().Create(user.ID, []OrderItemRequest{
		{MealID: soup.ID, Quantity: 1},
		{MealID: 4242, Quantity: 1},
	}, testDelivery(), models.PaymentCard)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMealNotFound)

	var notFound *MealNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint(4242), notFound.MealID)

	var orders, items int64
	require.NoError(t, config.DB.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, config.DB.Model(&models.OrderItem{}).Count(&items).Error)
	assert.Zero(t, orders, "a failed order must not be persisted")
	assert.Zero(t, items)
}

func TestCreateOrderRejectsNonPositiveQuantity(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "buyer@example.com", nil)
	soup := createTestMeal(t, testMeal{name: "Soup", mealType: models.MealTypeLunch, calories: 300, price: 250, available: true})

	_, err := NewOrderService().Create(user.ID, []OrderItemRequest{
		{MealID: soup.ID, Quantity: 0},
	}, testDelivery(), models.PaymentCard)
	assert.ErrorIs(t, err, ErrBadInput)
}

func createOrderForTest(t *testing.T, userID uint, method models.PaymentMethod) *models.Order {
	t.Helper()
	meal := createTestMeal(t, testMeal{name: "Fixture Meal", mealType: models.MealTypeLunch, calories: 400, price: 300, available: true})
	order, err := NewOrderService().Create(userID, []OrderItemRequest{{MealID: meal.ID, Quantity: 1}}, testDelivery(), method)
	require.NoError(t, err)
	return order
}

func TestSetStatusDeliveredMarksCardOrdersPaid(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "card@example.com", nil)
	order := createOrderForTest(t, user.ID, models.PaymentCard)

	updated, err := NewOrderService().SetStatus(order.ID, models.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, updated.Status)
	assert.Equal(t, models.PaymentPaid, updated.PaymentStatus)

	// Repeating the transition keeps the paid state.
	updated, err = NewOrderService().SetStatus(order.ID, models.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, updated.PaymentStatus)
}

func TestSetStatusDeliveredLeavesCashOrdersPending(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "cash@example.com", nil)
	order := createOrderForTest(t, user.ID, models.PaymentCashOnDelivery)

	updated, err := NewOrderService().SetStatus(order.ID, models.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, updated.Status)
	assert.Equal(t, models.PaymentPending, updated.PaymentStatus)
}

func TestSetStatusPermissiveTransitions(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "any@example.com", nil)
	order := createOrderForTest(t, user.ID, models.PaymentCashOnDelivery)

	// No transition graph: Delivered back to Processing is allowed.
	_, err := NewOrderService().SetStatus(order.ID, models.StatusDelivered)
	require.NoError(t, err)
	updated, err := NewOrderService().SetStatus(order.ID, models.StatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, models.StatusProcessing, updated.Status)
}

func TestSetStatusValidation(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "any@example.com", nil)
	order := createOrderForTest(t, user.ID, models.PaymentCard)

	_, err := NewOrderService().SetStatus(order.ID, "Teleported")
	assert.ErrorIs(t, err, ErrBadInput)

	_, err = NewOrderService().SetStatus(9999, models.StatusConfirmed)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	// Empty status keeps the current value.
	updated, err := NewOrderService().SetStatus(order.ID, "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusProcessing, updated.Status)
}

func TestSetPaymentStatusOverwrites(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "pay@example.com", nil)
	order := createOrderForTest(t, user.ID, models.PaymentCashOnDelivery)

	updated, err := NewOrderService().SetPaymentStatus(order.ID, models.PaymentPaid)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, updated.PaymentStatus)

	// Payment status on a cancelled order stays settable; cancelling
	// does not touch the payment side.
	_, err = NewOrderService().SetStatus(order.ID, models.StatusCancelled)
	require.NoError(t, err)
	updated, err = NewOrderService().SetPaymentStatus(order.ID, models.PaymentCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCancelled, updated.PaymentStatus)

	_, err = NewOrderService().SetPaymentStatus(order.ID, "Refunded")
	assert.ErrorIs(t, err, ErrBadInput)
}

func TestGetByIDAccessControl(t *testing.T) {
	setupTestDB(t)

	owner := createTestUser(t, "owner@example.com", nil)
	stranger := createTestUser(t, "stranger@example.com", nil)
	order := createOrderForTest(t, owner.ID, models.PaymentCard)

	svc := NewOrderService()

	got, err := svc.GetByID(order.ID, owner.ID, models.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
	require.NotNil(t, got.User)
	assert.Equal(t, owner.Email, got.User.Email)

	_, err = svc.GetByID(order.ID, stranger.ID, models.RoleUser)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.GetByID(order.ID, stranger.ID, models.RoleAdmin)
	assert.NoError(t, err, "admins may read any order")

	_, err = svc.GetByID(9999, owner.ID, models.RoleAdmin)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListByUserSortsNewestFirst(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "history@example.com", nil)
	other := createTestUser(t, "other@example.com", nil)

	first := createOrderForTest(t, user.ID, models.PaymentCard)
	second := createOrderForTest(t, user.ID, models.PaymentCard)
	createOrderForTest(t, other.ID, models.PaymentCard)

	// Push the second order visibly later.
	require.NoError(t, config.DB.Model(&models.Order{}).
		Where("id = ?", second.ID).
		Update("created_at", time.Now().Add(time.Hour)).Error)

	orders, err := NewOrderService().ListByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)

	all, err := NewOrderService().ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
