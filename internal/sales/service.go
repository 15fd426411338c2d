package sales

import (
	"context"
	"errors"

	"inventory-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Eşzamanlı stok çakışmasında tüm satış kaç kez baştan denenir.
const maxConflictRetries = 3

// Service - Satış yürütücüsü: doğrulama, stok düşümü, toplam hesabı,
// fatura numarası ve kalıcı kayıt tek giriş noktasından yürür.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{db: db, logger: logger}
}

// SaleLine - Sabit şekilli satış kalemi girdisi. SellingPrice istekle gelen
// birim fiyattır; katalog fiyatından farklı olabilir (bilerek, satış anında
// yeniden fiyatlamaya izin verilir) ve satışa anlık kopya olarak yazılır.
type SaleLine struct {
	ProductID    uint
	Quantity     int64
	SellingPrice decimal.Decimal
}

type PlaceSaleInput struct {
	BranchID   uint
	CustomerID uint
	Lines      []SaleLine
}

// PlaceSale - Satışı tek bir transaction içinde yürütür: kalemler istekteki
// sırayla doğrulanır ve düşülür, toplam gönderilen fiyatlardan hesaplanır,
// fatura numarası alınır ve kayıt yazılır. Herhangi bir kalem başarısız
// olursa transaction geri alınır; önceki kalemlerin düşümü dahil hiçbir
// yan etki kalmaz. Eşzamanlı stok çakışmasında okunan miktarlar bayatladığı
// için tek kalem değil, satışın tamamı sınırlı sayıda yeniden denenir.
func (s *Service) PlaceSale(ctx context.Context, in PlaceSaleInput) (*models.Sale, error) {
	if len(in.Lines) == 0 {
		return nil, ErrNoItems
	}
	for i, line := range in.Lines {
		if line.ProductID == 0 {
			return nil, &InvalidLineError{LineNo: i + 1, Reason: "product_id zorunlu"}
		}
		if line.Quantity <= 0 {
			return nil, &InvalidLineError{LineNo: i + 1, Reason: "quantity pozitif olmalı"}
		}
		if line.SellingPrice.IsNegative() {
			return nil, &InvalidLineError{LineNo: i + 1, Reason: "selling_price negatif olamaz"}
		}
	}

	var lastConflict error
	for attempt := 1; attempt <= maxConflictRetries; attempt++ {
		sale, err := s.placeSaleOnce(ctx, in)
		if err == nil {
			s.logger.Info("satış oluşturuldu",
				zap.Uint("branch_id", sale.BranchID),
				zap.Uint("customer_id", sale.CustomerID),
				zap.String("invoice_number", sale.InvoiceNumber),
				zap.String("total_amount", sale.TotalAmount.String()),
				zap.Int("item_count", len(sale.Items)))
			return sale, nil
		}

		var conflict *StockConflictError
		if errors.As(err, &conflict) {
			s.logger.Warn("eşzamanlı stok çakışması, satış yeniden deneniyor",
				zap.Uint("product_id", conflict.ProductID),
				zap.Int("attempt", attempt))
			lastConflict = err
			continue
		}
		return nil, err
	}
	return nil, lastConflict
}

func (s *Service) placeSaleOnce(ctx context.Context, in PlaceSaleInput) (*models.Sale, error) {
	var sale *models.Sale

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var branch models.Branch
		if err := tx.First(&branch, in.BranchID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBranchNotFound
			}
			return err
		}

		var customer models.Customer
		if err := tx.First(&customer, "id = ? AND branch_id = ?", in.CustomerID, in.BranchID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}

		total := decimal.Zero
		items := make([]models.SaleItem, 0, len(in.Lines))

		for i, line := range in.Lines {
			product, err := lookupProduct(tx, line.ProductID, in.BranchID)
			if err != nil {
				return err
			}

			if product.Quantity < line.Quantity {
				return &InsufficientStockError{
					ProductID: product.ID,
					Name:      product.Name,
					Requested: line.Quantity,
					Available: product.Quantity,
				}
			}

			// Toplam, gönderilen birim fiyattan hesaplanır (katalog değil)
			total = total.Add(line.SellingPrice.Mul(decimal.NewFromInt(line.Quantity)))

			if err := tryDecrement(tx, product.ID, line.Quantity); err != nil {
				return err
			}

			items = append(items, models.SaleItem{
				LineNo:       i + 1,
				ProductID:    product.ID,
				Quantity:     line.Quantity,
				SellingPrice: line.SellingPrice,
			})
		}

		seq, err := nextInvoiceSeq(tx, branch.ID)
		if err != nil {
			return err
		}

		newSale := models.Sale{
			PublicID:      uuid.NewString(),
			BranchID:      branch.ID,
			CustomerID:    in.CustomerID,
			InvoiceNumber: FormatInvoiceNumber(branch.Code, seq),
			TotalAmount:   total,
			Items:         items,
		}
		if err := tx.Create(&newSale).Error; err != nil {
			return err
		}

		sale = &newSale
		return nil
	})

	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		// Altyapı hatası: transaction geri alındığı için stok tarafında iz
		// kalmaz, yine de mutabakat kontrolü için kaydı logla.
		s.logger.Error("satış kalıcı olarak yazılamadı",
			zap.Uint("branch_id", in.BranchID),
			zap.Uint("customer_id", in.CustomerID),
			zap.Error(err))
		return nil, &PersistenceError{Err: err}
	}
	return sale, nil
}
