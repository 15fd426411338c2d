package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product - Şubeye bağlı ürün kaydı. Quantity sadece ürün oluşturulurken
// ve satış sırasında (atomik düşüm ile) değişir, asla negatif olamaz.
type Product struct {
	ID            uint `gorm:"primaryKey"`
	BranchID      uint `gorm:"index;not null"`
	Branch        Branch
	VendorID      uint `gorm:"index;not null"`
	Vendor        Vendor
	Name          string          `gorm:"size:100;not null"`
	Quantity      int64           `gorm:"not null;default:0;check:quantity >= 0"`
	PurchasePrice decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	SellingPrice  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
