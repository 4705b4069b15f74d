package routes

import (
	"github.com/gorilla/mux"

	"github.com/TouhedurRahman/apparel-avenue-server/controllers"
	"github.com/TouhedurRahman/apparel-avenue-server/middleware"
)

// RegisterRoutes sets up all the routes for the application. Auth gating is
// per-route: only the routes the admin dashboard and checkout depend on
// require a bearer token.
func RegisterRoutes(
	router *mux.Router,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	productController *controllers.ProductController,
	cartController *controllers.CartController,
	promocodeController *controllers.PromocodeController,
	orderController *controllers.OrderController,
	paymentController *controllers.PaymentController,
) {
	// Liveness check
	router.HandleFunc("/", controllers.Health).Methods("GET")

	// Token issuance
	router.HandleFunc("/jwt", authController.IssueToken).Methods("POST")

	// User routes
	router.HandleFunc("/users", userController.Register).Methods("POST")
	router.HandleFunc("/users", middleware.RequireAuth(userController.GetUsers)).Methods("GET")
	router.HandleFunc("/users/admin/{id}", userController.GrantAdmin).Methods("PATCH")
	router.HandleFunc("/user/{email}", userController.GetUserByEmail).Methods("GET")
	router.HandleFunc("/user/{email}", userController.UpsertProfile).Methods("PATCH")

	// Product routes
	router.HandleFunc("/products", productController.CreateProduct).Methods("POST")
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/product/{id}", productController.GetProductByID).Methods("GET")
	router.HandleFunc("/mensproductcategory", productController.MensCategories).Methods("GET")
	router.HandleFunc("/womensproductcategory", productController.WomensCategories).Methods("GET")
	router.HandleFunc("/kidsproductcategory", productController.KidsCategories).Methods("GET")

	// Cart routes
	router.HandleFunc("/cart", cartController.AddToCart).Methods("POST")
	router.HandleFunc("/cart/{email}", cartController.GetCart).Methods("GET")
	router.HandleFunc("/cart/{id}", cartController.RemoveFromCart).Methods("DELETE")

	// Promocode routes
	router.HandleFunc("/promocode", promocodeController.CreatePromocode).Methods("POST")
	router.HandleFunc("/promocodes", promocodeController.GetPromocodes).Methods("GET")
	router.HandleFunc("/promocode/{id}", promocodeController.GetPromocodeByID).Methods("GET")
	router.HandleFunc("/promocode/{id}", middleware.RequireAuth(promocodeController.UpdatePromocode)).Methods("PATCH")
	router.HandleFunc("/promocode/{id}", middleware.RequireAuth(promocodeController.DeletePromocode)).Methods("DELETE")

	// Payment routes
	router.HandleFunc("/create-payment-intent", middleware.RequireAuth(paymentController.CreatePaymentIntent)).Methods("POST")

	// Order routes
	router.HandleFunc("/orders", middleware.RequireAuth(orderController.CreateOrder)).Methods("POST")
	router.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
	router.HandleFunc("/order/{id}", middleware.RequireAuth(orderController.UpdateOrderStatus)).Methods("PATCH")
}
