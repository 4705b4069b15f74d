package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TouhedurRahman/apparel-avenue-server/models"
	"github.com/TouhedurRahman/apparel-avenue-server/store"
)

// ProductController handles product-related requests
type ProductController struct {
	Store *store.Store
}

// NewProductController creates a new ProductController
func NewProductController(s *store.Store) *ProductController {
	return &ProductController{Store: s}
}

// CreateProduct handles adding a new product
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	err := json.NewDecoder(r.Body).Decode(&product)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	product.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := pc.Store.Products.InsertOne(ctx, product)
	if err != nil {
		http.Error(w, "Error creating product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// GetProducts retrieves all products, newest first
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	var products []models.Product
	err := pc.Store.Products.FindAll(ctx, bson.M{}, opts, &products)
	if err != nil {
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// GetProductByID retrieves a single product by ID
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := store.ParseID(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var product models.Product
	err = pc.Store.Products.FindOne(ctx, bson.M{"_id": id}, &product)
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

// MensCategories lists the category field of men's products
func (pc *ProductController) MensCategories(w http.ResponseWriter, r *http.Request) {
	pc.listCategories(w, "male")
}

// WomensCategories lists the category field of women's products
func (pc *ProductController) WomensCategories(w http.ResponseWriter, r *http.Request) {
	pc.listCategories(w, "female")
}

// KidsCategories lists the category field of kids' products
func (pc *ProductController) KidsCategories(w http.ResponseWriter, r *http.Request) {
	pc.listCategories(w, "kids")
}

func (pc *ProductController) listCategories(w http.ResponseWriter, gender string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"category": 1})
	var categories []bson.M
	err := pc.Store.Products.FindAll(ctx, bson.M{"forGender": gender}, opts, &categories)
	if err != nil {
		http.Error(w, "Error fetching categories", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(categories)
}
