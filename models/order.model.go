package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order references the cart entries it was placed from. Placing an order
// removes those entries from the cart collection.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	OrderProductsID []string           `bson:"orderProductsId" json:"orderProductsId"`
	UserEmail       string             `bson:"userEmail,omitempty" json:"userEmail,omitempty"`
	TotalPrice      float64            `bson:"totalPrice,omitempty" json:"totalPrice,omitempty"`
	Status          string             `bson:"status" json:"status"` // e.g. "pending", "shipped"
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}
