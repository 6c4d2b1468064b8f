package services

import (
	"errors"
	"fmt"
)

// Taxonomy shared by the services. Controllers translate these into
// HTTP status codes; anything else is treated as a server fault and
// never leaks its detail to the client.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrMealNotFound   = errors.New("meal not found")
	ErrOrderNotFound  = errors.New("order not found")
	ErrEmailTaken     = errors.New("user with this email already exists")
	ErrBadCredentials = errors.New("invalid email or password")
	ErrForbidden      = errors.New("access to this resource is denied")
	ErrEmptyCart      = errors.New("order contains no meals")
	ErrBadInput       = errors.New("invalid input")
)

// MealNotFoundError names the missing meal so an order rejection can
// tell the client which line item was bad.
type MealNotFoundError struct {
	MealID uint
}

func (e *MealNotFoundError) Error() string {
	return fmt.Sprintf("meal with ID %d not found", e.MealID)
}

func (e *MealNotFoundError) Is(target error) bool {
	return target == ErrMealNotFound
}
