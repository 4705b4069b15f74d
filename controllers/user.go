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
	"golang.org/x/crypto/bcrypt"

	"github.com/TouhedurRahman/apparel-avenue-server/store"
)

// UserController handles user-related requests. User documents are
// schema-flexible, so bodies pass through as raw documents.
type UserController struct {
	Store *store.Store
}

// NewUserController creates a new UserController
func NewUserController(s *store.Store) *UserController {
	return &UserController{Store: s}
}

// Register creates a user unless the email is already taken
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var user bson.M
	err := json.NewDecoder(r.Body).Decode(&user)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var existing bson.M
	err = uc.Store.Users.FindOne(ctx, bson.M{"email": user["email"]}, &existing)
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "User already exists"})
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	// Never store a plaintext password
	if password, ok := user["password"].(string); ok && password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			http.Error(w, "Error hashing password", http.StatusInternalServerError)
			return
		}
		user["password"] = string(hashed)
	}

	result, err := uc.Store.Users.InsertOne(ctx, user)
	if err != nil {
		http.Error(w, "Error creating user", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// GetUsers retrieves all users
func (uc *UserController) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var users []bson.M
	err := uc.Store.Users.FindAll(ctx, bson.M{}, nil, &users)
	if err != nil {
		http.Error(w, "Error fetching users", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}

// GrantAdmin sets role "admin" on the user with the given id
func (uc *UserController) GrantAdmin(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := store.ParseID(params["id"])
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := uc.Store.Users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"role": "admin"}, false)
	if err != nil {
		http.Error(w, "Error updating user role", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetUserByEmail retrieves a single user by email
func (uc *UserController) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user bson.M
	err := uc.Store.Users.FindOne(ctx, bson.M{"email": params["email"]}, &user)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// UpsertProfile merges the posted fields into the user's profile, creating
// the user when none exists for the email
func (uc *UserController) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	var profile bson.M
	err := json.NewDecoder(r.Body).Decode(&profile)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := uc.Store.Users.UpdateOne(ctx, bson.M{"email": params["email"]}, profile, true)
	if err != nil {
		http.Error(w, "Error updating user profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
