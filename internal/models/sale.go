package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale - Tamamlanmış satış kaydı. Oluşturulduktan sonra değişmez:
// kalemler ve birim fiyatlar satış anındaki değerlerin kopyasıdır,
// güncel ürün fiyatlarından asla yeniden hesaplanmaz.
type Sale struct {
	ID            uint   `gorm:"primaryKey"`
	PublicID      string `gorm:"size:36;uniqueIndex;not null"`
	BranchID      uint   `gorm:"not null;uniqueIndex:idx_sales_branch_invoice"`
	Branch        Branch
	CustomerID    uint `gorm:"index;not null"`
	Customer      Customer
	InvoiceNumber string          `gorm:"size:30;not null;uniqueIndex:idx_sales_branch_invoice"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Items         []SaleItem      `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
}

// SaleItem - Satış kalemi. LineNo, istekteki kalem sırasını korur.
// SellingPrice satış anında gönderilen birim fiyattır (katalog fiyatı değil).
type SaleItem struct {
	ID           uint `gorm:"primaryKey"`
	SaleID       uint `gorm:"index;not null"`
	LineNo       int  `gorm:"not null"`
	ProductID    uint `gorm:"index;not null"`
	Product      Product
	Quantity     int64           `gorm:"not null"`
	SellingPrice decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}
