package mapper

import (
	"github.com/shopspring/decimal"

	"inventory/internal/dto"
	"inventory/internal/models"
)

// ToEntity builds a new, not yet persisted product from a request body.
// ID and CreatedAt are left for the storage layer to assign.
func ToEntity(in dto.InProduct) *models.Product {
	product := &models.Product{}
	UpdateFromDTO(in, product)
	return product
}

// ToOutDTO converts a stored product into its response shape.
func ToOutDTO(product *models.Product) dto.OutProduct {
	return dto.OutProduct{
		ID:                 product.ID,
		ProductName:        product.ProductName,
		ProductDescription: product.ProductDescription,
		ProductPrice:       product.ProductPrice,
		ProductCategory:    product.ProductCategory,
		ProductStock:       product.ProductStock,
		CreatedAt:          product.CreatedAt,
	}
}

// ToOutDTOs converts a list of stored products, preserving order.
func ToOutDTOs(products []models.Product) []dto.OutProduct {
	out := make([]dto.OutProduct, 0, len(products))
	for i := range products {
		out = append(out, ToOutDTO(&products[i]))
	}
	return out
}

// UpdateFromDTO overwrites every mutable field of product with the values
// from in. It never touches ID or CreatedAt.
func UpdateFromDTO(in dto.InProduct, product *models.Product) {
	product.ProductName = in.ProductName
	product.ProductDescription = in.ProductDescription
	product.ProductPrice = decimal.Zero
	if in.ProductPrice != nil {
		product.ProductPrice = *in.ProductPrice
	}
	product.ProductCategory = in.ProductCategory
	product.ProductStock = 0
	if in.ProductStock != nil {
		product.ProductStock = *in.ProductStock
	}
}
