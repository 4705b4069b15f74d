// main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v81"

	"github.com/TouhedurRahman/apparel-avenue-server/controllers"
	"github.com/TouhedurRahman/apparel-avenue-server/routes"
	"github.com/TouhedurRahman/apparel-avenue-server/store"
	"github.com/TouhedurRahman/apparel-avenue-server/utils"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret and the Stripe key
	utils.JwtKey = []byte(os.Getenv("ACCESS_TOKEN_SECRET"))
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	// Initialize EmailService (disabled when SENDGRID_API_KEY is unset)
	emailService := utils.NewEmailService()

	// Connect to MongoDB
	client := utils.ConnectDB()
	dataStore := store.NewMongoStore(client)

	// Initialize controllers
	authController := controllers.NewAuthController()
	userController := controllers.NewUserController(dataStore)
	productController := controllers.NewProductController(dataStore)
	cartController := controllers.NewCartController(dataStore)
	promocodeController := controllers.NewPromocodeController(dataStore)
	orderController := controllers.NewOrderController(dataStore, emailService)
	paymentController := controllers.NewPaymentController()

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(
		router,
		authController,
		userController,
		productController,
		cartController,
		promocodeController,
		orderController,
		paymentController,
	)

	// The storefront runs on a separate origin
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	server := &http.Server{
		Addr:    ":" + port,
		Handler: cors(router),
	}

	go func() {
		log.Printf("Server is running on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// Shut down on SIGINT/SIGTERM and release the shared Mongo client
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("MongoDB disconnect: %v", err)
	}
	log.Println("Server stopped")
}
