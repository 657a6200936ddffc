package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrOrderNotFound is returned when no order matches the given id.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines read and status-update access to orders.
// Order creation belongs to the checkout flow and is out of scope here.
type OrderRepository interface {
	// FindByBuyer returns all orders placed by the given buyer, newest first.
	// Product photos are excluded from the projection.
	FindByBuyer(ctx context.Context, buyerID string) ([]*entity.Order, error)

	// FindAll returns every order, newest first, with the same projection
	// as FindByBuyer. Callers must already be authorized as admin.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// UpdateStatus sets the status of an order and returns the updated
	// document, or ErrOrderNotFound.
	UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error)
}
