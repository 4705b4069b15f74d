package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Promocode is a discount code managed by the admin dashboard.
type Promocode struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Code        string             `bson:"code" json:"code"`
	Discount    float64            `bson:"discount" json:"discount"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
