package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"spicemart-backend/models"
)

// In-memory implementations, used by the tests and for driver-less runs.

type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]models.User)}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID.Hex()] = *user
	return nil
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *MemoryUserRepository) FindDuplicate(_ context.Context, name, email, phone string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Name == name && u.Email == email && u.Phone == phone {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID.Hex()]; !ok {
		return ErrNotFound
	}
	r.users[user.ID.Hex()] = *user
	return nil
}

func (r *MemoryUserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type MemoryCatalogRepository struct {
	mu         sync.RWMutex
	categories map[string]models.Category
	order      []string
}

func NewMemoryCatalogRepository() *MemoryCatalogRepository {
	return &MemoryCatalogRepository{categories: make(map[string]models.Category)}
}

func (r *MemoryCatalogRepository) FindByName(_ context.Context, catName string) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.categories[catName]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *MemoryCatalogRepository) Create(_ context.Context, category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	if _, ok := r.categories[category.CatName]; !ok {
		r.order = append(r.order, category.CatName)
	}
	r.categories[category.CatName] = *category
	return nil
}

func (r *MemoryCatalogRepository) Update(_ context.Context, category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[category.CatName]; !ok {
		return ErrNotFound
	}
	r.categories[category.CatName] = *category
	return nil
}

func (r *MemoryCatalogRepository) List(_ context.Context) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cats := make([]models.Category, 0, len(r.order))
	for _, name := range r.order {
		cats = append(cats, r.categories[name])
	}
	return cats, nil
}

type MemoryMessageRepository struct {
	mu       sync.RWMutex
	messages []models.ContactMessage
}

func NewMemoryMessageRepository() *MemoryMessageRepository {
	return &MemoryMessageRepository{}
}

func (r *MemoryMessageRepository) Create(_ context.Context, msg *models.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if msg.ID.IsZero() {
		msg.ID = primitive.NewObjectID()
	}
	r.messages = append(r.messages, *msg)
	return nil
}

func (r *MemoryMessageRepository) List(_ context.Context) ([]models.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.ContactMessage, len(r.messages))
	copy(out, r.messages)
	return out, nil
}

type MemoryPurchaseRepository struct {
	mu      sync.RWMutex
	records map[string]models.PurchaseRecord
}

func NewMemoryPurchaseRepository() *MemoryPurchaseRepository {
	return &MemoryPurchaseRepository{records: make(map[string]models.PurchaseRecord)}
}

func (r *MemoryPurchaseRepository) FindByEmail(_ context.Context, email string) (*models.PurchaseRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (r *MemoryPurchaseRepository) Upsert(_ context.Context, record *models.PurchaseRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	r.records[record.Email] = *record
	return nil
}
