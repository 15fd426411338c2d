package sales

import (
	"errors"

	"inventory-backend/internal/models"

	"gorm.io/gorm"
)

// Ürün defteri: şubeye bağlı stok miktarının tek yetkili kaynağı.
// Tüm düşümler buradaki koşullu atomik güncellemeden geçer; miktarı
// önce okuyup sonra yazmak eşzamanlı satışlarda fazla satışa yol açar.

// lookupProduct - Ürünü satışın şubesi içinde arar. Şube uyuşmazlığı da
// "bulunamadı" sayılır, böylece bir şube başka şubenin stoğunu göremez
// ve düşüremez.
func lookupProduct(tx *gorm.DB, productID, branchID uint) (*models.Product, error) {
	var product models.Product
	if err := tx.First(&product, "id = ? AND branch_id = ?", productID, branchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ProductNotFoundError{ProductID: productID}
		}
		return nil, err
	}
	return &product, nil
}

// tryDecrement - Stoğu tek komutla koşullu düşer: mevcut miktar yeterliyse
// düşüm uygulanır, değilse satır etkilenmez. Doğrulama okumasından sonra
// stok başka bir satışça değiştiyse RowsAffected 0 döner ve çağıran
// StockConflictError alır.
func tryDecrement(tx *gorm.DB, productID uint, quantity int64) error {
	res := tx.Model(&models.Product{}).
		Where("id = ? AND quantity >= ?", productID, quantity).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &StockConflictError{ProductID: productID}
	}
	return nil
}
