package inventory

import (
	"inventory-backend/internal/auth"
	"inventory-backend/internal/database"
	"inventory-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type StockRow struct {
	Name          string          `json:"name" gorm:"column:name"`
	TotalQuantity int64           `json:"total_quantity" gorm:"column:total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value" gorm:"column:total_value"`     // miktar * alış fiyatı
	SellingValue  decimal.Decimal `json:"selling_value" gorm:"column:selling_value"` // miktar * satış fiyatı
}

// GET /api/stock
// Ürün adına göre gruplanmış stok değeri raporu. Rapor amaçlı bir görünüm,
// satış akışındaki stok kontrolünün yerine geçmez.
func StockReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq, err := auth.BranchScope(c, database.DB.Model(&models.Product{}))
		if err != nil {
			return err
		}

		var rows []StockRow
		if err := dbq.
			Select("name, SUM(quantity) AS total_quantity, SUM(quantity * purchase_price) AS total_value, SUM(quantity * selling_price) AS selling_value").
			Group("name").
			Order("name asc").
			Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok raporu oluşturulamadı")
		}

		totalStockValue := decimal.Zero
		for _, r := range rows {
			totalStockValue = totalStockValue.Add(r.TotalValue)
		}

		return c.JSON(fiber.Map{
			"stock_items":       rows,
			"total_stock_value": totalStockValue,
		})
	}
}
