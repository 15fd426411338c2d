package sales

import (
	"errors"
	"fmt"
)

// Satış çekirdeğinin hata sınıflandırması. Handler katmanı bu tipleri
// errors.Is / errors.As ile HTTP durum kodlarına çevirir.

// ErrUnassignedBranch - Şube atanmamış branch_admin satış açamaz.
var ErrUnassignedBranch = errors.New("kullanıcıya atanmış şube yok")

// ErrBranchRequired - super_admin satış açarken şubeyi açıkça belirtmek zorunda.
var ErrBranchRequired = errors.New("super_admin satışı için branch_id zorunlu")

// ErrForeignBranch - branch_admin kendi şubesi dışına satış açamaz.
var ErrForeignBranch = errors.New("başka şube adına satış açılamaz")

// ErrBranchNotFound - Satışın hedef şubesi kayıtlı değil.
var ErrBranchNotFound = errors.New("şube bulunamadı")

// ErrCustomerNotFound - Müşteri satışın şubesinde kayıtlı değil.
var ErrCustomerNotFound = errors.New("müşteri bu şubede bulunamadı")

// ErrNoItems - Satış en az bir kalem içermeli.
var ErrNoItems = errors.New("satış en az bir kalem içermeli")

// InvalidLineError - Kalem bazlı giriş doğrulama hatası.
type InvalidLineError struct {
	LineNo int
	Reason string
}

func (e *InvalidLineError) Error() string {
	return fmt.Sprintf("kalem %d geçersiz: %s", e.LineNo, e.Reason)
}

// ProductNotFoundError - Ürün yok ya da satışın şubesine ait değil.
// Şube uyuşmazlığı bilerek ayrıştırılmaz; iki durum da aynı cevabı üretir.
type ProductNotFoundError struct {
	ProductID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("ürün bulunamadı (ID: %d)", e.ProductID)
}

// InsufficientStockError - İstenen miktar doğrulama anındaki stoğu aşıyor.
type InsufficientStockError struct {
	ProductID uint
	Name      string
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("yetersiz stok: %s (istenen %d, mevcut %d)", e.Name, e.Requested, e.Available)
}

// StockConflictError - Okuma ile düşüm arasında stok eşzamanlı değişti.
// İstemci hatası değildir; executor sınırlı sayıda yeniden dener.
type StockConflictError struct {
	ProductID uint
}

func (e *StockConflictError) Error() string {
	return fmt.Sprintf("eşzamanlı stok çakışması (ürün ID: %d)", e.ProductID)
}

// PersistenceError - Satış kaydının kalıcı yazımı başarısız oldu. Stok düşümü
// aynı transaction içinde olduğundan rollback ile geri alınır; yine de olay
// mutabakat için loglanır.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("satış kaydı yazılamadı: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// isDomainError - Çekirdeğin beklediği, altyapı hatası olmayan sonuçlar.
func isDomainError(err error) bool {
	var pnf *ProductNotFoundError
	var ins *InsufficientStockError
	var conflict *StockConflictError
	var line *InvalidLineError
	switch {
	case errors.As(err, &pnf), errors.As(err, &ins), errors.As(err, &conflict), errors.As(err, &line):
		return true
	case errors.Is(err, ErrBranchNotFound), errors.Is(err, ErrCustomerNotFound), errors.Is(err, ErrNoItems):
		return true
	}
	return false
}
