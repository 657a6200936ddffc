package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOwn returns the authenticated buyer's orders with their name attached.
func (srv *orderService) ListOwn(ctx context.Context, userID string) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByBuyer(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list own orders", slog.String("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	if err := srv.attachBuyerNames(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// ListAll returns every order. Admin gating happens at the route level.
func (srv *orderService) ListAll(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list all orders", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	if err := srv.attachBuyerNames(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// SetStatus moves an order to a new fulfillment status.
func (srv *orderService) SetStatus(ctx context.Context, orderID string, status string) (*entity.Order, error) {
	newStatus := entity.OrderStatus(status)
	if !newStatus.IsValid() {
		srv.log(ctx).Warn("Rejected unknown order status", slog.String("orderID", orderID), slog.String("status", status))

		return nil, domainerrors.ErrInvalidOrderStatus.WithDetails("status: " + status).WrapMessage("status update rejected")
	}

	order, err := srv.orderRepo.UpdateStatus(ctx, orderID, newStatus)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound.WrapMessage("status update rejected")
	}
	if err != nil {
		srv.log(ctx).Error("Failed to update order status", slog.String("orderID", orderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated", slog.String("orderID", orderID), slog.String("status", status))

	return order, nil
}

// attachBuyerNames resolves the display name of every distinct buyer in the
// result set. A buyer that no longer resolves keeps an empty name rather than
// failing the whole listing.
func (srv *orderService) attachBuyerNames(ctx context.Context, orders []*entity.Order) error {
	names := make(map[string]string)

	for _, order := range orders {
		buyerID := order.Buyer.Hex()
		name, seen := names[buyerID]
		if !seen {
			buyer, err := srv.userRepo.FindByID(ctx, buyerID)
			switch {
			case errors.Is(err, repository.ErrUserNotFound):
				name = ""
			case err != nil:
				return errors.Wrap(err, "failed to resolve buyer name")
			default:
				name = buyer.Name
			}
			names[buyerID] = name
		}
		order.BuyerName = name
	}

	return nil
}
