package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ContactMessage is written once by /send-message and only ever listed.
type ContactMessage struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Phone   string             `bson:"phone" json:"phone"`
	Message string             `bson:"message" json:"message"`
	Date    string             `bson:"date" json:"date"`
}
