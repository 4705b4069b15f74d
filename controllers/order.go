package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TouhedurRahman/apparel-avenue-server/models"
	"github.com/TouhedurRahman/apparel-avenue-server/store"
	"github.com/TouhedurRahman/apparel-avenue-server/utils"
)

// OrderController handles order-related requests
type OrderController struct {
	Store        *store.Store
	EmailService *utils.EmailService
}

// NewOrderController creates a new OrderController
func NewOrderController(s *store.Store, emailService *utils.EmailService) *OrderController {
	return &OrderController{Store: s, EmailService: emailService}
}

// CreateOrder inserts the order, then removes the consumed cart entries.
// The two steps are not atomic: when the delete fails the order is retained
// and the failure is surfaced to the caller.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var order models.Order
	err := json.NewDecoder(r.Body).Decode(&order)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if order.Status == "" {
		order.Status = "pending"
	}
	order.CreatedAt = time.Now()

	cartIDs := make([]primitive.ObjectID, 0, len(order.OrderProductsID))
	for _, hex := range order.OrderProductsID {
		id, err := store.ParseID(hex)
		if err != nil {
			http.Error(w, "Invalid cart entry ID", http.StatusBadRequest)
			return
		}
		cartIDs = append(cartIDs, id)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	insertResult, err := oc.Store.Orders.InsertOne(ctx, order)
	if err != nil {
		http.Error(w, "Failed to create order", http.StatusInternalServerError)
		return
	}

	deleteResult, err := oc.Store.Cart.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": cartIDs}})
	if err != nil {
		http.Error(w, "Order created but failed to clear cart entries", http.StatusInternalServerError)
		return
	}

	if oc.EmailService != nil && order.UserEmail != "" {
		if id, ok := insertResult.InsertedID.(primitive.ObjectID); ok {
			order.ID = id
		}
		go func(email string, order models.Order) {
			err := oc.EmailService.SendOrderConfirmationEmail(email, order)
			if err != nil {
				log.Printf("Failed to send email to %s: %v", email, err)
			}
		}(order.UserEmail, order)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"insertResult": insertResult,
		"deleteResult": deleteResult,
	})
}

// GetOrders retrieves all orders, newest first
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	var orders []models.Order
	err := oc.Store.Orders.FindAll(ctx, bson.M{}, opts, &orders)
	if err != nil {
		http.Error(w, "Error fetching orders", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// UpdateOrderStatus updates the status of an order by id
func (oc *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := store.ParseID(params["id"])
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	var statusUpdate struct {
		Status string `json:"status"`
	}
	err = json.NewDecoder(r.Body).Decode(&statusUpdate)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := oc.Store.Orders.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"status": statusUpdate.Status}, true)
	if err != nil {
		http.Error(w, "Error updating order status", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
