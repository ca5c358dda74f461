// Package repository is the only layer that touches persisted state.
// Handlers receive these interfaces; nothing else reads the database.
package repository

import (
	"context"
	"errors"

	"spicemart-backend/models"
)

// ErrNotFound is returned when the referenced document does not exist.
var ErrNotFound = errors.New("document not found")

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	// FindDuplicate matches on the exact (name, email, phone) triple, the
	// registration duplicate rule. Same email with a different name and
	// phone is deliberately not a duplicate.
	FindDuplicate(ctx context.Context, name, email, phone string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}

type CatalogRepository interface {
	FindByName(ctx context.Context, catName string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	List(ctx context.Context) ([]models.Category, error)
}

type MessageRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
	List(ctx context.Context) ([]models.ContactMessage, error)
}

type PurchaseRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.PurchaseRecord, error)
	Upsert(ctx context.Context, record *models.PurchaseRecord) error
}
