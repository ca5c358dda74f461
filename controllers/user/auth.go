// Package user holds the account handlers: registration, sessions,
// profile and address management.
package user

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"spicemart-backend/auth"
	"spicemart-backend/middleware"
	"spicemart-backend/models"
	"spicemart-backend/repository"
	"spicemart-backend/validators"
)

// Register creates an account. Duplicates are detected on the exact
// (name, email, phone) triple; the unique indexes on email, username and
// phone remain the hard guard underneath.
func Register(users repository.UserRepository, passwordMinLen int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in validators.RegisterInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		if errs := in.Validate(passwordMinLen); len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		ctx := c.Request.Context()
		_, err := users.FindDuplicate(ctx, in.Name, in.Email, in.Phone)
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		}
		if !errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		digest, err := auth.HashPassword(in.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		userType := in.UserType
		if userType == "" {
			userType = "user"
		}
		newUser := models.User{
			Name:       in.Name,
			Username:   in.Username,
			Phone:      in.Phone,
			Email:      in.Email,
			Password:   digest,
			UserType:   userType,
			Addresses:  []models.Address{},
			Timestamps: []models.SessionStamp{},
			Wishlist:   []string{},
			Cart:       []models.CartItem{},
		}
		if err := users.Create(ctx, &newUser); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
	}
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password produce the same response so callers cannot probe which
// accounts exist. A fresh session stamp is appended even if the previous
// one is still open.
func Login(users repository.UserRepository, issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in validators.LoginInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		if errs := in.Validate(); len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		ctx := c.Request.Context()
		account, err := users.FindByEmail(ctx, in.Email)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email or password"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		if !auth.CheckPassword(in.Password, account.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email or password"})
			return
		}

		account.Timestamps = append(account.Timestamps, models.SessionStamp{
			Login: models.FormatStamp(time.Now()),
		})
		if err := users.Update(ctx, account); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		token, err := issuer.Issue(account.ID.Hex(), account.Email, account.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

// Logout closes the most recent open session stamp. The account is taken
// from the verified token, never from the request body. Calling it with no
// open stamp is a no-op that still succeeds.
func Logout(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(middleware.CtxEmail)

		ctx := c.Request.Context()
		account, err := users.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		last := len(account.Timestamps) - 1
		if last >= 0 && account.Timestamps[last].Logout == "" {
			account.Timestamps[last].Logout = models.FormatStamp(time.Now())
			if err := users.Update(ctx, account); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
	}
}
