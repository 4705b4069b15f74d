package controllers

import (
	"context"
	"fmt"
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

func seedCart(t *testing.T, s *store.Store, names ...string) []primitive.ObjectID {
	t.Helper()
	var ids []primitive.ObjectID
	for _, name := range names {
		result, err := s.Cart.InsertOne(context.Background(), models.CartEntry{ProductName: name, UserEmail: "a@b.com"})
		if err != nil {
			t.Fatalf("seeding cart: %v", err)
		}
		ids = append(ids, result.InsertedID.(primitive.ObjectID))
	}
	return ids
}

func TestCreateOrderClearsListedCartEntries(t *testing.T) {
	s := store.NewMemoryStore()
	oc := NewOrderController(s, nil)

	ids := seedCart(t, s, "Denim Jacket", "Polo Shirt", "Summer Dress")

	body := fmt.Sprintf(`{"orderProductsId":["%s","%s"],"userEmail":"a@b.com","totalPrice":85}`,
		ids[0].Hex(), ids[1].Hex())
	rec := httptest.NewRecorder()
	oc.CreateOrder(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "insertResult")
	assert.Contains(t, rec.Body.String(), "deleteResult")

	// only the entry outside the order remains
	var entries []models.CartEntry
	err := s.Cart.FindAll(context.Background(), bson.M{}, nil, &entries)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "Summer Dress", entries[0].ProductName)

	var orders []models.Order
	err = s.Orders.FindAll(context.Background(), bson.M{}, nil, &orders)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, []string{ids[0].Hex(), ids[1].Hex()}, orders[0].OrderProductsID)
	assert.Equal(t, "pending", orders[0].Status)
}

func TestCreateOrderInvalidCartEntryID(t *testing.T) {
	s := store.NewMemoryStore()
	oc := NewOrderController(s, nil)

	seedCart(t, s, "Denim Jacket")

	rec := httptest.NewRecorder()
	oc.CreateOrder(rec, httptest.NewRequest(http.MethodPost, "/orders",
		strings.NewReader(`{"orderProductsId":["not-a-hex-id"],"userEmail":"a@b.com"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// ids are validated up front, so nothing was inserted or deleted
	var orders []models.Order
	assert.NoError(t, s.Orders.FindAll(context.Background(), bson.M{}, nil, &orders))
	assert.Empty(t, orders)

	var entries []models.CartEntry
	assert.NoError(t, s.Cart.FindAll(context.Background(), bson.M{}, nil, &entries))
	assert.Len(t, entries, 1)
}

func TestGetOrdersNewestFirst(t *testing.T) {
	s := store.NewMemoryStore()
	oc := NewOrderController(s, nil)

	ctx := context.Background()
	for _, email := range []string{"first@b.com", "second@b.com"} {
		_, err := s.Orders.InsertOne(ctx, models.Order{UserEmail: email, Status: "pending"})
		assert.NoError(t, err)
	}

	rec := httptest.NewRecorder()
	oc.GetOrders(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	first := strings.Index(rec.Body.String(), "second@b.com")
	second := strings.Index(rec.Body.String(), "first@b.com")
	assert.True(t, first >= 0 && second >= 0 && first < second, "orders should list newest first")
}

func TestUpdateOrderStatus(t *testing.T) {
	s := store.NewMemoryStore()
	oc := NewOrderController(s, nil)

	result, err := s.Orders.InsertOne(context.Background(), models.Order{UserEmail: "a@b.com", Status: "pending"})
	assert.NoError(t, err)
	id := result.InsertedID.(primitive.ObjectID)

	req := httptest.NewRequest(http.MethodPatch, "/order/"+id.Hex(), strings.NewReader(`{"status":"shipped"}`))
	req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})
	rec := httptest.NewRecorder()
	oc.UpdateOrderStatus(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var order models.Order
	err = s.Orders.FindOne(context.Background(), bson.M{"_id": id}, &order)
	assert.NoError(t, err)
	assert.Equal(t, "shipped", order.Status)
}

func TestUpdateOrderStatusInvalidID(t *testing.T) {
	s := store.NewMemoryStore()
	oc := NewOrderController(s, nil)

	req := httptest.NewRequest(http.MethodPatch, "/order/nope", strings.NewReader(`{"status":"shipped"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "nope"})
	rec := httptest.NewRecorder()
	oc.UpdateOrderStatus(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
