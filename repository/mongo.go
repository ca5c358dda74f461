package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"spicemart-backend/models"
)

// Mongo-backed implementations. Every read-modify-write here is
// unsynchronized: two concurrent requests against the same document can
// lose an update. Accepted at this system's scale.

type MongoUserRepository struct {
	col *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{col: db.Collection("users")}
}

// EnsureIndexes creates the unique indexes guarding email, username and
// phone. Called once at startup.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "phone", Value: 1}}, Options: unique},
	})
	return err
}

func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, mapErr(err)
	}
	return &user, nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var user models.User
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		return nil, mapErr(err)
	}
	return &user, nil
}

func (r *MongoUserRepository) FindDuplicate(ctx context.Context, name, email, phone string) (*models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"name": name, "email": email, "phone": phone}).Decode(&user)
	if err != nil {
		return nil, mapErr(err)
	}
	return &user, nil
}

func (r *MongoUserRepository) Update(ctx context.Context, user *models.User) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoUserRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type MongoCatalogRepository struct {
	col *mongo.Collection
}

func NewMongoCatalogRepository(db *mongo.Database) *MongoCatalogRepository {
	return &MongoCatalogRepository{col: db.Collection("categories")}
}

func (r *MongoCatalogRepository) FindByName(ctx context.Context, catName string) (*models.Category, error) {
	var cat models.Category
	err := r.col.FindOne(ctx, bson.M{"cat_name": catName}).Decode(&cat)
	if err != nil {
		return nil, mapErr(err)
	}
	return &cat, nil
}

func (r *MongoCatalogRepository) Create(ctx context.Context, category *models.Category) error {
	res, err := r.col.InsertOne(ctx, category)
	if err != nil {
		return err
	}
	category.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoCatalogRepository) Update(ctx context.Context, category *models.Category) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": category.ID}, category)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoCatalogRepository) List(ctx context.Context) ([]models.Category, error) {
	opts := options.Find().SetProjection(bson.M{"cat_name": 1, "subCategories": 1})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var cats []models.Category
	if err := cur.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

type MongoMessageRepository struct {
	col *mongo.Collection
}

func NewMongoMessageRepository(db *mongo.Database) *MongoMessageRepository {
	return &MongoMessageRepository{col: db.Collection("contacts")}
}

func (r *MongoMessageRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	res, err := r.col.InsertOne(ctx, msg)
	if err != nil {
		return err
	}
	msg.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoMessageRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var msgs []models.ContactMessage
	if err := cur.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

type MongoPurchaseRepository struct {
	col *mongo.Collection
}

func NewMongoPurchaseRepository(db *mongo.Database) *MongoPurchaseRepository {
	return &MongoPurchaseRepository{col: db.Collection("purchases")}
}

func (r *MongoPurchaseRepository) FindByEmail(ctx context.Context, email string) (*models.PurchaseRecord, error) {
	var rec models.PurchaseRecord
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&rec)
	if err != nil {
		return nil, mapErr(err)
	}
	return &rec, nil
}

func (r *MongoPurchaseRepository) Upsert(ctx context.Context, record *models.PurchaseRecord) error {
	filter := bson.M{"email": record.Email}
	update := bson.M{"$set": bson.M{
		"email":    record.Email,
		"username": record.Username,
		"orders":   record.Orders,
	}}
	res, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return err
	}
	if res.UpsertedID != nil {
		if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
			record.ID = oid
		}
	}
	return nil
}

func mapErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
