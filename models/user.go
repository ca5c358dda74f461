package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SessionStamp records one login and, once the user logs out, the matching
// logout time. The last stamp having an empty Logout means the account is
// currently logged in; logging in again simply appends another stamp.
type SessionStamp struct {
	Login  string `bson:"login" json:"login"`
	Logout string `bson:"logout,omitempty" json:"logout,omitempty"`
}

type Address struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Phone    string             `bson:"phone" json:"phone"`
	Pincode  string             `bson:"pincode" json:"pincode"`
	State    string             `bson:"state" json:"state"`
	City     string             `bson:"city" json:"city"`
	Locality string             `bson:"locality" json:"locality"`
	Landmark string             `bson:"landmark" json:"landmark"`
}

// CartItem is one cart line. The same product may appear once per option id;
// the (ProdName, OptionsID) pair is the dedup key.
type CartItem struct {
	ProdName  string `bson:"prod_name" json:"prod_name"`
	OptionsID string `bson:"options_id" json:"options_id"`
}

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Username   string             `bson:"username" json:"username"`
	Phone      string             `bson:"phone" json:"phone"`
	Email      string             `bson:"email" json:"email"`
	Password   string             `bson:"password" json:"password,omitempty"`
	UserType   string             `bson:"userType" json:"userType"`
	Addresses  []Address          `bson:"addresses" json:"addresses"`
	Timestamps []SessionStamp     `bson:"timestamps" json:"timestamps"`
	Wishlist   []string           `bson:"wishlist" json:"wishlist"`
	Cart       []CartItem         `bson:"cart" json:"cart"`
}
