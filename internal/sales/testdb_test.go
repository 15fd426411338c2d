package sales

import (
	"fmt"
	"testing"

	"inventory-backend/internal/database"
	"inventory-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB - Test başına izole sqlite veritabanı. _txlock=immediate ile
// yazma transaction'ları baştan kilit alır, eşzamanlılık testlerinde
// kilit yükseltme kilitlenmesi yaşanmaz.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s/test.db?_busy_timeout=10000&_txlock=immediate&_foreign_keys=on", t.TempDir())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func seedBranch(t *testing.T, db *gorm.DB, name, code string) models.Branch {
	t.Helper()
	b := models.Branch{Name: name, Code: code, Address: name + " Address"}
	require.NoError(t, db.Create(&b).Error)
	return b
}

func seedVendor(t *testing.T, db *gorm.DB, branchID uint) models.Vendor {
	t.Helper()
	v := models.Vendor{BranchID: branchID, Name: fmt.Sprintf("Vendor %d", branchID)}
	require.NoError(t, db.Create(&v).Error)
	return v
}

func seedCustomer(t *testing.T, db *gorm.DB, branchID uint) models.Customer {
	t.Helper()
	m := models.Customer{BranchID: branchID, Name: fmt.Sprintf("Customer %d", branchID)}
	require.NoError(t, db.Create(&m).Error)
	return m
}

func seedProduct(t *testing.T, db *gorm.DB, branchID, vendorID uint, name string, quantity int64, sellingPrice string) models.Product {
	t.Helper()
	p := models.Product{
		BranchID:      branchID,
		VendorID:      vendorID,
		Name:          name,
		Quantity:      quantity,
		PurchasePrice: dec(t, sellingPrice),
		SellingPrice:  dec(t, sellingPrice),
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func productQuantity(t *testing.T, db *gorm.DB, productID uint) int64 {
	t.Helper()
	var p models.Product
	require.NoError(t, db.First(&p, productID).Error)
	return p.Quantity
}
