package models

// InvoiceCounter - Şube başına fatura sıra sayacı. Satış sayısını sayıp +1
// yapmak eşzamanlı isteklerde aynı numarayı üretebildiği için sayaç ayrı bir
// kayıtta tutulur ve satış transaction'ı içinde tek bir atomik upsert ile
// artırılır; rollback sayacı da geri alır, duplikasyon olamaz.
type InvoiceCounter struct {
	BranchID uint  `gorm:"primaryKey"`
	NextSeq  int64 `gorm:"not null;default:0"`
}
