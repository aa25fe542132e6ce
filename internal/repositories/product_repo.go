package repositories

import (
	"context"
	"errors"

	"inventory/internal/models"
)

// ErrProductNotFound is returned by FindByID when no product has the given ID.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	// Save inserts product when its ID is zero and overwrites the stored
	// record otherwise. ID and CreatedAt are populated on insert.
	Save(ctx context.Context, product *models.Product) error
	// DeleteByID removes the product if present. A missing ID is not an error.
	DeleteByID(ctx context.Context, id uint) error
}
