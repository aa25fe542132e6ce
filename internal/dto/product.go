package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// InProduct is the validated request body for create and update.
// Price and stock are pointers so a missing value fails `required`
// while an explicit zero reaches the range checks.
type InProduct struct {
	ProductName        string           `json:"productName" validate:"notblank,min=1,max=100"`
	ProductDescription string           `json:"productDescription" validate:"max=300"`
	ProductPrice       *decimal.Decimal `json:"productPrice" validate:"required,positive,money"`
	ProductCategory    string           `json:"productCategory" validate:"notblank,max=50"`
	ProductStock       *int             `json:"productStock" validate:"required,gte=0"`
}

// OutProduct is the response body for every product read.
type OutProduct struct {
	ID                 uint            `json:"id"`
	ProductName        string          `json:"productName"`
	ProductDescription string          `json:"productDescription"`
	ProductPrice       decimal.Decimal `json:"productPrice"`
	ProductCategory    string          `json:"productCategory"`
	ProductStock       int             `json:"productStock"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// ErrorDTO is the envelope for not-found, bad-request and internal errors.
type ErrorDTO struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
