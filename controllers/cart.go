package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/TouhedurRahman/apparel-avenue-server/models"
	"github.com/TouhedurRahman/apparel-avenue-server/store"
)

// CartController handles cart-related requests
type CartController struct {
	Store *store.Store
}

// NewCartController creates a new CartController
func NewCartController(s *store.Store) *CartController {
	return &CartController{Store: s}
}

// AddToCart inserts a cart entry unless the user already has one for the
// same product. The existence check and the insert are two separate calls,
// so concurrent requests for the same pair can both pass the check.
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	var entry models.CartEntry
	err := json.NewDecoder(r.Body).Decode(&entry)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var existing models.CartEntry
	err = cc.Store.Cart.FindOne(ctx, bson.M{"productName": entry.ProductName, "userEmail": entry.UserEmail}, &existing)
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Product already exists in the cart"})
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	result, err := cc.Store.Cart.InsertOne(ctx, entry)
	if err != nil {
		http.Error(w, "Error adding to cart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// GetCart retrieves the cart entries for a user
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var entries []models.CartEntry
	err := cc.Store.Cart.FindAll(ctx, bson.M{"userEmail": params["email"]}, nil, &entries)
	if err != nil {
		http.Error(w, "Error fetching cart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

// RemoveFromCart deletes a single cart entry by id
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := store.ParseID(params["id"])
	if err != nil {
		http.Error(w, "Invalid cart entry ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := cc.Store.Cart.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		http.Error(w, "Error removing cart entry", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
