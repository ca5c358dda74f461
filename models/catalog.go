package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Option is the purchasable unit of a product: one pack size with its own
// price, discount and stock counters.
type Option struct {
	ProdQuantity   string `bson:"prod_quantity" json:"prod_quantity"`
	Price          int    `bson:"price" json:"price"`
	Discount       int    `bson:"discount" json:"discount"`
	TotalStock     int    `bson:"total_stock" json:"total_stock"`
	AvailableStock int    `bson:"available_stock" json:"available_stock"`
	SoldStock      int    `bson:"sold_stock" json:"sold_stock"`
}

type Product struct {
	ProdName    string   `bson:"prod_name" json:"prod_name"`
	Brand       string   `bson:"brand" json:"brand"`
	Description string   `bson:"description" json:"description"`
	Image       string   `bson:"image" json:"image"`
	Options     []Option `bson:"options" json:"options"`
}

type SubCategory struct {
	SubCatName string    `bson:"subCat_name" json:"subCat_name"`
	Products   []Product `bson:"products" json:"products"`
}

// Category is the root of the catalog tree. CatName is the natural key;
// within one category subcategory names are unique.
type Category struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CatName       string             `bson:"cat_name" json:"cat_name"`
	SubCategories []SubCategory      `bson:"subCategories" json:"subCategories"`
}
