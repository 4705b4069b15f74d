package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/TouhedurRahman/apparel-avenue-server/utils"
)

// AuthController handles token issuance
type AuthController struct{}

// NewAuthController creates a new AuthController
func NewAuthController() *AuthController {
	return &AuthController{}
}

// IssueToken signs the posted user object as JWT claims with a 1-hour expiry
func (ac *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	token, err := utils.GenerateJWT(payload)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// Health is the liveness check on the root path
func Health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Apparel Avenue server is up and running!"))
}
