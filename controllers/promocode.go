package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/TouhedurRahman/apparel-avenue-server/models"
	"github.com/TouhedurRahman/apparel-avenue-server/store"
)

// PromocodeController handles promo code CRUD
type PromocodeController struct {
	Store *store.Store
}

// NewPromocodeController creates a new PromocodeController
func NewPromocodeController(s *store.Store) *PromocodeController {
	return &PromocodeController{Store: s}
}

// CreatePromocode handles adding a new promo code
func (pc *PromocodeController) CreatePromocode(w http.ResponseWriter, r *http.Request) {
	var promocode models.Promocode
	err := json.NewDecoder(r.Body).Decode(&promocode)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	promocode.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := pc.Store.Promocodes.InsertOne(ctx, promocode)
	if err != nil {
		http.Error(w, "Error creating promocode", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// GetPromocodes retrieves all promo codes
func (pc *PromocodeController) GetPromocodes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var promocodes []models.Promocode
	err := pc.Store.Promocodes.FindAll(ctx, bson.M{}, nil, &promocodes)
	if err != nil {
		http.Error(w, "Error fetching promocodes", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(promocodes)
}

// GetPromocodeByID retrieves a single promo code by ID
func (pc *PromocodeController) GetPromocodeByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := store.ParseID(params["id"])
	if err != nil {
		http.Error(w, "Invalid promocode ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var promocode models.Promocode
	err = pc.Store.Promocodes.FindOne(ctx, bson.M{"_id": id}, &promocode)
	if err != nil {
		http.Error(w, "Promocode not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(promocode)
}

// UpdatePromocode merges the posted fields into the promo code by id
func (pc *PromocodeController) UpdatePromocode(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := store.ParseID(params["id"])
	if err != nil {
		http.Error(w, "Invalid promocode ID", http.StatusBadRequest)
		return
	}

	var patch bson.M
	err = json.NewDecoder(r.Body).Decode(&patch)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := pc.Store.Promocodes.UpdateOne(ctx, bson.M{"_id": id}, patch, true)
	if err != nil {
		http.Error(w, "Error updating promocode", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// DeletePromocode deletes a promo code by id
func (pc *PromocodeController) DeletePromocode(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := store.ParseID(params["id"])
	if err != nil {
		http.Error(w, "Invalid promocode ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := pc.Store.Promocodes.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		http.Error(w, "Error deleting promocode", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
