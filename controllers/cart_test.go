package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/TouhedurRahman/apparel-avenue-server/models"
	"github.com/TouhedurRahman/apparel-avenue-server/store"
)

func TestAddToCartDuplicate(t *testing.T) {
	s := store.NewMemoryStore()
	cc := NewCartController(s)

	body := `{"productName":"Denim Jacket","userEmail":"a@b.com","price":59.99}`

	first := httptest.NewRecorder()
	cc.AddToCart(first, httptest.NewRequest(http.MethodPost, "/cart", strings.NewReader(body)))
	assert.Equal(t, http.StatusCreated, first.Code)

	second := httptest.NewRecorder()
	cc.AddToCart(second, httptest.NewRequest(http.MethodPost, "/cart", strings.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.Contains(t, second.Body.String(), "already exists")

	var entries []models.CartEntry
	err := s.Cart.FindAll(context.Background(), bson.M{"productName": "Denim Jacket", "userEmail": "a@b.com"}, nil, &entries)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAddToCartSameProductDifferentUsers(t *testing.T) {
	s := store.NewMemoryStore()
	cc := NewCartController(s)

	first := httptest.NewRecorder()
	cc.AddToCart(first, httptest.NewRequest(http.MethodPost, "/cart",
		strings.NewReader(`{"productName":"Denim Jacket","userEmail":"a@b.com"}`)))
	assert.Equal(t, http.StatusCreated, first.Code)

	second := httptest.NewRecorder()
	cc.AddToCart(second, httptest.NewRequest(http.MethodPost, "/cart",
		strings.NewReader(`{"productName":"Denim Jacket","userEmail":"c@d.com"}`)))
	assert.Equal(t, http.StatusCreated, second.Code)
}

func TestGetCartByEmail(t *testing.T) {
	s := store.NewMemoryStore()
	cc := NewCartController(s)

	ctx := context.Background()
	_, err := s.Cart.InsertOne(ctx, models.CartEntry{ProductName: "Denim Jacket", UserEmail: "a@b.com"})
	assert.NoError(t, err)
	_, err = s.Cart.InsertOne(ctx, models.CartEntry{ProductName: "Polo Shirt", UserEmail: "a@b.com"})
	assert.NoError(t, err)
	_, err = s.Cart.InsertOne(ctx, models.CartEntry{ProductName: "Polo Shirt", UserEmail: "c@d.com"})
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/cart/a@b.com", nil)
	req = mux.SetURLVars(req, map[string]string{"email": "a@b.com"})
	rec := httptest.NewRecorder()
	cc.GetCart(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, rec.Body.String(), "Denim Jacket")
	assert.Contains(t, rec.Body.String(), "Polo Shirt")
	assert.NotContains(t, rec.Body.String(), "c@d.com")
}

func TestRemoveFromCart(t *testing.T) {
	s := store.NewMemoryStore()
	cc := NewCartController(s)

	result, err := s.Cart.InsertOne(context.Background(), models.CartEntry{ProductName: "Denim Jacket", UserEmail: "a@b.com"})
	assert.NoError(t, err)
	id := result.InsertedID.(primitive.ObjectID)

	req := httptest.NewRequest(http.MethodDelete, "/cart/"+id.Hex(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})
	rec := httptest.NewRecorder()
	cc.RemoveFromCart(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var entries []models.CartEntry
	err = s.Cart.FindAll(context.Background(), bson.M{}, nil, &entries)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRemoveFromCartInvalidID(t *testing.T) {
	s := store.NewMemoryStore()
	cc := NewCartController(s)

	req := httptest.NewRequest(http.MethodDelete, "/cart/nope", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "nope"})
	rec := httptest.NewRecorder()
	cc.RemoveFromCart(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
