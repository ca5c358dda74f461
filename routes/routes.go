// Package routes wires every endpoint onto the gin engine.
package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"spicemart-backend/auth"
	cartControllers "spicemart-backend/controllers/cart"
	contactControllers "spicemart-backend/controllers/contact"
	orderControllers "spicemart-backend/controllers/order"
	productControllers "spicemart-backend/controllers/product"
	userControllers "spicemart-backend/controllers/user"
	"spicemart-backend/middleware"
	"spicemart-backend/repository"
)

// Deps carries everything the handlers need. Repositories are injected
// here once; no handler reads package-level state.
type Deps struct {
	Users          repository.UserRepository
	Catalog        repository.CatalogRepository
	Messages       repository.MessageRepository
	Purchases      repository.PurchaseRepository
	Issuer         *auth.TokenIssuer
	PasswordMinLen int
}

// Setup registers CORS and all routes, public first, then the
// token-protected group.
func Setup(r *gin.Engine, d Deps) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// Public
	r.POST("/register", userControllers.Register(d.Users, d.PasswordMinLen))
	r.POST("/login", userControllers.Login(d.Users, d.Issuer))
	r.POST("/api/Products", productControllers.AddProducts(d.Catalog))
	r.GET("/Products", productControllers.ListCategories(d.Catalog))
	r.POST("/send-message", contactControllers.SendMessage(d.Messages))
	r.GET("/messages", contactControllers.GetMessages(d.Messages))

	// Protected
	authed := r.Group("/", middleware.RequireAuth(d.Issuer))
	{
		authed.POST("/logout", userControllers.Logout(d.Users))

		authed.GET("/user/profile", userControllers.GetProfile(d.Users))
		authed.PUT("/user/:id", userControllers.UpdateUser(d.Users))
		authed.DELETE("/user/:id", userControllers.DeleteUser(d.Users))
		authed.POST("/user/:id/address", userControllers.AddAddress(d.Users))
		authed.DELETE("/user/:id/address/:addressId", userControllers.DeleteAddress(d.Users))

		authed.GET("/wishlist", cartControllers.GetWishlist(d.Users))
		authed.PUT("/wishlist", cartControllers.AddToWishlist(d.Users))
		authed.DELETE("/wishlist", cartControllers.RemoveFromWishlist(d.Users))

		authed.GET("/cart", cartControllers.GetCart(d.Users))
		authed.PUT("/add-to-cart", cartControllers.AddToCart(d.Users))
		authed.DELETE("/delete-cart", cartControllers.RemoveFromCart(d.Users))

		authed.POST("/place-order", orderControllers.PlaceOrder(d.Purchases))
		authed.GET("/orders", orderControllers.GetOrders(d.Purchases))
	}
}
