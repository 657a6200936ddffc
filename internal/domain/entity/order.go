package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// OrderStatus is the closed set of fulfillment states an order can be in.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a member of the closed enum.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// OrderProduct is a product snapshot embedded in an order document.
// Photo carries the raw image bytes and is excluded from every read
// projection and from JSON output.
type OrderProduct struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Description string        `bson:"description" json:"description"`
	Price       float64       `bson:"price" json:"price"`
	Photo       []byte        `bson:"photo,omitempty" json:"-"`
}

// Order references a buyer and a list of product snapshots. This core only
// reads orders and updates their status; order creation belongs to the
// checkout flow outside this scope.
type Order struct {
	ID        bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	Buyer     bson.ObjectID  `bson:"buyer" json:"buyer"`
	BuyerName string         `bson:"-" json:"buyerName,omitempty"`
	Products  []OrderProduct `bson:"products" json:"products"`
	Payment   PaymentSummary `bson:"payment" json:"payment"`
	Status    OrderStatus    `bson:"status" json:"status"`
	CreatedAt time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updatedAt"`
}

// PaymentSummary records the outcome of the payment for an order.
type PaymentSummary struct {
	Total   float64 `bson:"total" json:"total"`
	Success bool    `bson:"success" json:"success"`
}
