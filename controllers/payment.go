package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

// PaymentController bridges checkout to the Stripe payment processor
type PaymentController struct{}

// NewPaymentController creates a new PaymentController
func NewPaymentController() *PaymentController {
	return &PaymentController{}
}

// CreatePaymentIntent requests a payment intent for the given price and
// returns the client secret the frontend uses to complete the payment
func (pc *PaymentController) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Price float64 `json:"price"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	// Stripe expects integer minor units
	amount := int64(body.Price * 100)

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		http.Error(w, "Error creating payment intent", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"clientSecret": intent.ClientSecret})
}
