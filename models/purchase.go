package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type OrderLine struct {
	Product  Product `bson:"product" json:"product"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Options  string  `bson:"options" json:"options"`
	Price    int     `bson:"price" json:"price"`
}

type Order struct {
	Products []OrderLine `bson:"products" json:"products"`
	Address  string      `bson:"address" json:"address"`
	Date     string      `bson:"date" json:"date"`
}

// PurchaseRecord accumulates all orders placed by one account, keyed by
// email with the username snapshotted at first purchase.
type PurchaseRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Username string             `bson:"username" json:"username"`
	Orders   []Order            `bson:"orders" json:"orders"`
}
