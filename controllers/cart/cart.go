package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spicemart-backend/models"
	"spicemart-backend/repository"
)

type cartInput struct {
	ProdName  string `json:"prod_name"`
	OptionsID string `json:"options_id"`
}

// AddToCart inserts a (product, option) pair into the caller's cart. The
// same product under a different option id is a distinct line; an exact
// pair match is a no-op.
func AddToCart(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cartInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		account := currentUser(c, users)
		if account == nil {
			return
		}

		present := false
		for _, item := range account.Cart {
			if item.ProdName == in.ProdName && item.OptionsID == in.OptionsID {
				present = true
				break
			}
		}
		if !present {
			account.Cart = append(account.Cart, models.CartItem{
				ProdName:  in.ProdName,
				OptionsID: in.OptionsID,
			})
			if err := users.Update(c.Request.Context(), account); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
				return
			}
		}
		account.Password = ""
		c.JSON(http.StatusOK, account)
	}
}

// GetCart returns the caller's cart lines.
func GetCart(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		account := currentUser(c, users)
		if account == nil {
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": account.Cart})
	}
}

// RemoveFromCart deletes every cart line matching the product name,
// whatever its option id. Coarser than AddToCart on purpose: the
// storefront's remove button is per product, not per option.
func RemoveFromCart(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cartInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		account := currentUser(c, users)
		if account == nil {
			return
		}

		kept := account.Cart[:0]
		for _, item := range account.Cart {
			if item.ProdName != in.ProdName {
				kept = append(kept, item)
			}
		}
		if len(kept) != len(account.Cart) {
			account.Cart = kept
			if err := users.Update(c.Request.Context(), account); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
				return
			}
		} else {
			account.Cart = kept
		}
		account.Password = ""
		c.JSON(http.StatusOK, account)
	}
}
