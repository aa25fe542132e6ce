package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"inventory/internal/apperrors"
	"inventory/internal/dto"
	"inventory/internal/mapper"
	"inventory/internal/models"
	"inventory/internal/repositories"

	"github.com/google/uuid"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo   repositories.ProductRepository
	events EventPublisher
}

// NewProductService creates a new ProductService. events may be nil, in
// which case no lifecycle events are published.
func NewProductService(repo repositories.ProductRepository, events EventPublisher) *ProductService {
	return &ProductService{
		repo:   repo,
		events: events,
	}
}

// GetProducts retrieves all products.
func (s *ProductService) GetProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return products, nil
}

// GetProductByID retrieves a single product, failing with a not-found error if absent.
func (s *ProductService) GetProductByID(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, apperrors.NotFound("Product with id %d not found", id)
		}
		return nil, apperrors.Internal(err)
	}
	return product, nil
}

// SaveProduct creates a product from a validated request body and returns
// the stored record with its ID and creation time.
func (s *ProductService) SaveProduct(ctx context.Context, in dto.InProduct) (*models.Product, error) {
	product := mapper.ToEntity(in)
	if err := s.repo.Save(ctx, product); err != nil {
		return nil, apperrors.Internal(err)
	}
	s.publish(ctx, EventProductCreated, product.ID, product)
	return product, nil
}

// UpdateProduct replaces every mutable field of an existing product.
// The read and the write are separate storage calls; concurrent updates
// to the same ID are last-write-wins.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, in dto.InProduct) (*models.Product, error) {
	product, err := s.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mapper.UpdateFromDTO(in, product)

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, apperrors.Internal(err)
	}
	s.publish(ctx, EventProductUpdated, product.ID, product)
	return product, nil
}

// DeleteProductByID deletes a product. It does not check for existence
// first, so deleting an unknown ID succeeds.
func (s *ProductService) DeleteProductByID(ctx context.Context, id uint) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return apperrors.Internal(err)
	}
	s.publish(ctx, EventProductDeleted, id, nil)
	return nil
}

// publish sends a lifecycle event. Failures are logged and never fail the
// request: the database write has already happened.
func (s *ProductService) publish(ctx context.Context, eventType string, id uint, product *models.Product) {
	if s.events == nil {
		return
	}

	event := ProductEvent{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		ProductID:  id,
		OccurredAt: time.Now().UTC(),
	}
	if product != nil {
		out := mapper.ToOutDTO(product)
		event.Product = &out
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal %s event for product %d: %v", eventType, id, err)
		return
	}
	if err := s.events.Publish(ctx, eventType, body); err != nil {
		log.Printf("Warning: Failed to publish %s event for product %d: %v", eventType, id, err)
	}
}
