package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"spicemart-backend/middleware"
	"spicemart-backend/models"
	"spicemart-backend/repository"
)

// GetProfile returns the caller's own account, password omitted.
func GetProfile(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, err := users.FindByID(c.Request.Context(), c.GetString(middleware.CtxUserID))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		account.Password = ""
		c.JSON(http.StatusOK, account)
	}
}

type updateUserInput struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// UpdateUser patches identity fields on the addressed account. Empty
// fields in the body are left untouched.
func UpdateUser(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in updateUserInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}

		ctx := c.Request.Context()
		account, err := users.FindByID(ctx, c.Param("id"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		if in.Name != "" {
			account.Name = in.Name
		}
		if in.Username != "" {
			account.Username = in.Username
		}
		if in.Phone != "" {
			account.Phone = in.Phone
		}
		if in.Email != "" {
			account.Email = in.Email
		}
		if err := users.Update(ctx, account); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		account.Password = ""
		c.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "user": account})
	}
}

// DeleteUser removes the addressed account outright.
func DeleteUser(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := users.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	}
}

// AddAddress appends a postal address. Addresses carry no uniqueness
// constraint; the same address may be stored twice.
func AddAddress(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.Address
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}

		ctx := c.Request.Context()
		account, err := users.FindByID(ctx, c.Param("id"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		in.ID = primitive.NewObjectID()
		account.Addresses = append(account.Addresses, in)
		if err := users.Update(ctx, account); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address added successfully", "addresses": account.Addresses})
	}
}

// DeleteAddress removes one address subdocument by its id.
func DeleteAddress(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		account, err := users.FindByID(ctx, c.Param("id"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		addressID := c.Param("addressId")
		idx := -1
		for i, addr := range account.Addresses {
			if addr.ID.Hex() == addressID {
				idx = i
				break
			}
		}
		if idx == -1 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Address not found"})
			return
		}

		account.Addresses = append(account.Addresses[:idx], account.Addresses[idx+1:]...)
		if err := users.Update(ctx, account); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address deleted successfully", "addresses": account.Addresses})
	}
}
