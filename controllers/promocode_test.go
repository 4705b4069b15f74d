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

func TestPromocodeCRUD(t *testing.T) {
	s := store.NewMemoryStore()
	pc := NewPromocodeController(s)

	rec := httptest.NewRecorder()
	pc.CreatePromocode(rec, httptest.NewRequest(http.MethodPost, "/promocode",
		strings.NewReader(`{"code":"SUMMER10","discount":10}`)))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var promocode models.Promocode
	err := s.Promocodes.FindOne(context.Background(), bson.M{"code": "SUMMER10"}, &promocode)
	assert.NoError(t, err)
	assert.False(t, promocode.CreatedAt.IsZero())
	id := promocode.ID.Hex()

	rec = httptest.NewRecorder()
	pc.GetPromocodes(rec, httptest.NewRequest(http.MethodGet, "/promocodes", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "SUMMER10")

	req := httptest.NewRequest(http.MethodGet, "/promocode/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec = httptest.NewRecorder()
	pc.GetPromocodeByID(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "SUMMER10")

	req = httptest.NewRequest(http.MethodPatch, "/promocode/"+id, strings.NewReader(`{"discount":15}`))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec = httptest.NewRecorder()
	pc.UpdatePromocode(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	err = s.Promocodes.FindOne(context.Background(), bson.M{"code": "SUMMER10"}, &promocode)
	assert.NoError(t, err)
	assert.Equal(t, float64(15), promocode.Discount)

	req = httptest.NewRequest(http.MethodDelete, "/promocode/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec = httptest.NewRecorder()
	pc.DeletePromocode(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var remaining []models.Promocode
	assert.NoError(t, s.Promocodes.FindAll(context.Background(), bson.M{}, nil, &remaining))
	assert.Empty(t, remaining)
}

func TestPromocodeInvalidID(t *testing.T) {
	s := store.NewMemoryStore()
	pc := NewPromocodeController(s)

	for _, run := range []func(http.ResponseWriter, *http.Request){
		pc.GetPromocodeByID, pc.DeletePromocode,
	} {
		req := httptest.NewRequest(http.MethodGet, "/promocode/nope", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "nope"})
		rec := httptest.NewRecorder()
		run(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestGetPromocodeByIDNotFound(t *testing.T) {
	s := store.NewMemoryStore()
	pc := NewPromocodeController(s)

	id := primitive.NewObjectID().Hex()
	req := httptest.NewRequest(http.MethodGet, "/promocode/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	pc.GetPromocodeByID(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
