package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderUsecase exposes order listing and fulfillment-status updates.
type OrderUsecase interface {
	// ListOwn returns the orders of the authenticated buyer with buyer
	// names resolved and product photos excluded.
	ListOwn(ctx context.Context, userID string) ([]*entity.Order, error)

	// ListAll returns every order with the same projection. Route-level
	// role gating must already have happened.
	ListAll(ctx context.Context) ([]*entity.Order, error)

	// SetStatus moves an order to a new fulfillment status. The status must
	// be a member of the closed enum.
	SetStatus(ctx context.Context, orderID string, status string) (*entity.Order, error)
}
