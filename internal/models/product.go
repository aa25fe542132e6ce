package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BaseModel holds the surrogate key and creation timestamp shared by stored records.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `gorm:"not null"`
}

// BeforeCreate stamps CreatedAt once, when the record is first inserted.
// Microsecond precision matches what Postgres keeps, so a reloaded record
// compares equal to the one returned from create.
func (b *BaseModel) BeforeCreate(_ *gorm.DB) error {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}
	return nil
}

// Product represents an inventory item.
type Product struct {
	BaseModel
	ProductName        string          `gorm:"type:varchar(100);not null"`
	ProductDescription string          `gorm:"type:varchar(300);not null"`
	ProductPrice       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	ProductCategory    string          `gorm:"type:varchar(50);not null"`
	ProductStock       int             `gorm:"not null"`
}
