package sales

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "INV-BRA-0001", FormatInvoiceNumber("BRA", 1))
	assert.Equal(t, "INV-BRB-0042", FormatInvoiceNumber("BRB", 42))
	assert.Equal(t, "INV-BRA-9999", FormatInvoiceNumber("bra", 9999))
	// Dolgu taşınca numara uzar, kırpılmaz
	assert.Equal(t, "INV-BRA-10000", FormatInvoiceNumber("BRA", 10000))
}

func TestNextInvoiceSeqStartsAtOneAndIncrements(t *testing.T) {
	db := newTestDB(t)
	branch := seedBranch(t, db, "Branch A", "BRA")

	for want := int64(1); want <= 3; want++ {
		var seq int64
		err := db.Transaction(func(tx *gorm.DB) error {
			var err error
			seq, err = nextInvoiceSeq(tx, branch.ID)
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, want, seq)
	}
}

func TestNextInvoiceSeqIsScopedPerBranch(t *testing.T) {
	db := newTestDB(t)
	branchA := seedBranch(t, db, "Branch A", "BRA")
	branchB := seedBranch(t, db, "Branch B", "BRB")

	bump := func(branchID uint) int64 {
		var seq int64
		err := db.Transaction(func(tx *gorm.DB) error {
			var err error
			seq, err = nextInvoiceSeq(tx, branchID)
			return err
		})
		require.NoError(t, err)
		return seq
	}

	assert.Equal(t, int64(1), bump(branchA.ID))
	assert.Equal(t, int64(2), bump(branchA.ID))
	// Diğer şubenin sayacı bağımsızdır
	assert.Equal(t, int64(1), bump(branchB.ID))
	assert.Equal(t, int64(3), bump(branchA.ID))
}

func TestNextInvoiceSeqRollbackDoesNotBurnUniqueness(t *testing.T) {
	db := newTestDB(t)
	branch := seedBranch(t, db, "Branch A", "BRA")

	// Satış transaction'ı geri alınınca sayaç artışı da geri alınır;
	// numara bir sonraki satışta güvenle yeniden kullanılır çünkü
	// geri alınan satışın kaydı yoktur.
	_ = db.Transaction(func(tx *gorm.DB) error {
		_, err := nextInvoiceSeq(tx, branch.ID)
		require.NoError(t, err)
		return gorm.ErrInvalidTransaction // bilerek geri al
	})

	var seq int64
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		seq, err = nextInvoiceSeq(tx, branch.ID)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), seq)
}
