package repositories

import (
	"context"
	"errors"
	"fmt"

	"inventory/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// FindAll retrieves all products in the database's natural order.
func (r *GORMProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// FindByID retrieves a single product by its ID.
func (r *GORMProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// Save creates the product when it has no ID yet, otherwise writes every column.
func (r *GORMProductRepository) Save(ctx context.Context, product *models.Product) error {
	db := r.db.WithContext(ctx)
	if product.ID == 0 {
		if err := db.Create(product).Error; err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}
		return nil
	}
	// Save updates all fields, including zero values.
	if err := db.Save(product).Error; err != nil {
		return fmt.Errorf("failed to update product %d: %w", product.ID, err)
	}
	return nil
}

// DeleteByID deletes a product by its ID. Deleting a missing ID affects no rows and succeeds.
func (r *GORMProductRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Product{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return nil
}
