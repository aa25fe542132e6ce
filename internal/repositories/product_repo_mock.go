package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"inventory/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// It backs the "memory" storage driver and hands out sequential IDs like an
// auto-increment column.
type MockProductRepository struct {
	products map[uint]models.Product
	nextID   uint
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// FindAll returns all products ordered by ID.
func (r *MockProductRepository) FindAll(_ context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	sort.Slice(productList, func(i, j int) bool { return productList[i].ID < productList[j].ID })
	return productList, nil
}

// FindByID returns a product by its ID.
func (r *MockProductRepository) FindByID(_ context.Context, id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// Save inserts or overwrites a product.
func (r *MockProductRepository) Save(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		product.ID = r.nextID
		r.nextID++
		if product.CreatedAt.IsZero() {
			product.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
		}
	} else if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
	r.products[product.ID] = *product
	return nil
}

// DeleteByID removes a product by its ID if it exists.
func (r *MockProductRepository) DeleteByID(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.products, id)
	return nil
}
