// Package contact holds the contact-message inbox handlers.
package contact

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"spicemart-backend/models"
	"spicemart-backend/repository"
	"spicemart-backend/validators"
)

// SendMessage stores an inbound contact message with a server-assigned
// timestamp. Messages are immutable once stored.
func SendMessage(messages repository.MessageRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in validators.ContactInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
			return
		}
		if errs := in.Validate(); len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": errs})
			return
		}

		msg := models.ContactMessage{
			Name:    in.Name,
			Email:   in.Email,
			Phone:   in.Phone,
			Message: in.Message,
			Date:    models.FormatStamp(time.Now()),
		}
		if err := messages.Create(c.Request.Context(), &msg); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message sent successfully"})
	}
}

// GetMessages lists every stored message.
func GetMessages(messages repository.MessageRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		msgs, err := messages.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		if len(msgs) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "No messages found"})
			return
		}
		c.JSON(http.StatusOK, msgs)
	}
}
