package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
)

const orderCollection = "orders"

// photoExcludedProjection keeps product snapshots but drops the raw image
// bytes from every read.
var photoExcludedProjection = bson.M{"products.photo": 0}

type orderRepository struct {
	db *mongo.Database
}

// NewOrderRepository creates the MongoDB-backed order repository.
func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{db: db}
}

// FindByBuyer returns all orders placed by the given buyer, newest first.
func (r *orderRepository) FindByBuyer(ctx context.Context, buyerID string) ([]*entity.Order, error) {
	objectID, err := bson.ObjectIDFromHex(buyerID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid buyer id")
	}

	return r.find(ctx, bson.M{"buyer": objectID})
}

// FindAll returns every order, newest first.
func (r *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *orderRepository) find(ctx context.Context, filter bson.M) ([]*entity.Order, error) {
	findOptions := options.Find().
		SetProjection(photoExcludedProjection).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection(orderCollection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}
	defer cursor.Close(ctx)

	orders := make([]*entity.Order, 0)
	for cursor.Next(ctx) {
		var order entity.Order
		if err := cursor.Decode(&order); err != nil {
			return nil, errors.Wrap(err, "failed to decode order")
		}
		orders = append(orders, &order)
	}

	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "order cursor failed")
	}

	return orders, nil
}

// UpdateStatus sets the status of an order and returns the updated document.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	objectID, err := bson.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, repository.ErrOrderNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}}

	result := r.db.Collection(orderCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		update,
		options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetProjection(photoExcludedProjection),
	)
	if errors.Is(result.Err(), mongo.ErrNoDocuments) {
		return nil, repository.ErrOrderNotFound
	}
	if result.Err() != nil {
		return nil, errors.Wrap(result.Err(), "failed to update order status")
	}

	var order entity.Order
	if err := result.Decode(&order); err != nil {
		return nil, errors.Wrap(err, "failed to decode updated order")
	}

	return &order, nil
}
