package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartEntry is a product snapshot placed in a user's cart. At most one entry
// exists per (productName, userEmail) pair.
type CartEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductID   string             `bson:"productId,omitempty" json:"productId,omitempty"`
	ProductName string             `bson:"productName" json:"productName"`
	UserEmail   string             `bson:"userEmail" json:"userEmail"`
	Price       float64            `bson:"price,omitempty" json:"price,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
}
