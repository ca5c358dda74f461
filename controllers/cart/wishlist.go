// Package cart holds the wishlist and shopping-cart handlers. Both
// operate on arrays embedded in the caller's user document.
package cart

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"spicemart-backend/middleware"
	"spicemart-backend/models"
	"spicemart-backend/repository"
)

// currentUser resolves the caller's account from the verified claims.
// Writes the error response itself and returns nil when that happens.
func currentUser(c *gin.Context, users repository.UserRepository) *models.User {
	account, err := users.FindByEmail(c.Request.Context(), c.GetString(middleware.CtxEmail))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return nil
	}
	return account
}

type wishlistInput struct {
	ProdName string `json:"prod_name"`
}

// AddToWishlist inserts a product name into the caller's wishlist.
// Already present means no write, still a success.
func AddToWishlist(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in wishlistInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		account := currentUser(c, users)
		if account == nil {
			return
		}

		present := false
		for _, name := range account.Wishlist {
			if name == in.ProdName {
				present = true
				break
			}
		}
		if !present {
			account.Wishlist = append(account.Wishlist, in.ProdName)
			if err := users.Update(c.Request.Context(), account); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
				return
			}
		}
		account.Password = ""
		c.JSON(http.StatusOK, account)
	}
}

// GetWishlist returns the caller's wishlist.
func GetWishlist(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		account := currentUser(c, users)
		if account == nil {
			return
		}
		c.JSON(http.StatusOK, gin.H{"wishlist": account.Wishlist})
	}
}

// RemoveFromWishlist deletes a product name from the wishlist. Absent is
// a no-op that still succeeds.
func RemoveFromWishlist(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in wishlistInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		account := currentUser(c, users)
		if account == nil {
			return
		}

		for i, name := range account.Wishlist {
			if name == in.ProdName {
				account.Wishlist = append(account.Wishlist[:i], account.Wishlist[i+1:]...)
				if err := users.Update(c.Request.Context(), account); err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
					return
				}
				break
			}
		}
		account.Password = ""
		c.JSON(http.StatusOK, account)
	}
}
