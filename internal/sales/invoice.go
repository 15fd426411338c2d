package sales

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Fatura numaralandırıcı: şube başına tekil, artan sıra numarası üretir.
// "Mevcut satışları say + 1" kalıbı eşzamanlı isteklerde aynı numarayı
// üretebildiği için sayaç ayrı bir kayıtta tutulur ve tek komutla artırılır.

// nextInvoiceSeq - Şubenin sayacını atomik olarak artırır ve yeni değeri
// döndürür; kayıt yoksa 1 ile başlar. Satış transaction'ı içinde çalışır:
// rollback'te sayaç da geri alınır, numara sonraki satışta güvenle tekrar
// kullanılır (kalıcı satışlar arasında duplikasyon olamaz).
func nextInvoiceSeq(tx *gorm.DB, branchID uint) (int64, error) {
	var seq int64
	err := tx.Raw(`
		INSERT INTO invoice_counters (branch_id, next_seq)
		VALUES (?, 1)
		ON CONFLICT (branch_id) DO UPDATE SET next_seq = invoice_counters.next_seq + 1
		RETURNING next_seq
	`, branchID).Scan(&seq).Error
	if err != nil {
		return 0, err
	}
	return seq, nil
}

// FormatInvoiceNumber - "INV-<şube kodu>-<0000 dolgulu sıra>" formatı.
func FormatInvoiceNumber(branchCode string, seq int64) string {
	return fmt.Sprintf("INV-%s-%04d", strings.ToUpper(branchCode), seq)
}
