// Package order holds the purchase-record handlers.
package order

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"spicemart-backend/middleware"
	"spicemart-backend/models"
	"spicemart-backend/repository"
)

type placeOrderInput struct {
	Products []models.OrderLine `json:"products"`
	Address  string             `json:"address"`
}

// PlaceOrder appends an order to the caller's purchase record, creating
// the record on the first purchase. The date is stamped server-side. No
// stock is decremented here; the catalog and purchases are deliberately
// decoupled.
func PlaceOrder(purchases repository.PurchaseRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in placeOrderInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		if len(in.Products) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Order has no products"})
			return
		}
		if in.Address == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Address is required"})
			return
		}

		ctx := c.Request.Context()
		email := c.GetString(middleware.CtxEmail)
		record, err := purchases.FindByEmail(ctx, email)
		if errors.Is(err, repository.ErrNotFound) {
			record = &models.PurchaseRecord{
				Email:    email,
				Username: c.GetString(middleware.CtxUsername),
				Orders:   []models.Order{},
			}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		record.Orders = append(record.Orders, models.Order{
			Products: in.Products,
			Address:  in.Address,
			Date:     models.FormatStamp(time.Now()),
		})
		if err := purchases.Upsert(ctx, record); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order placed successfully", "record": record})
	}
}

// GetOrders returns every order the caller has placed.
func GetOrders(purchases repository.PurchaseRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		record, err := purchases.FindByEmail(c.Request.Context(), c.GetString(middleware.CtxEmail))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "No orders found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": record.Orders})
	}
}
