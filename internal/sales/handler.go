package sales

import (
	"errors"

	"inventory-backend/internal/auth"
	"inventory-backend/internal/database"
	"inventory-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleItemRequest struct {
	ProductID    uint            `json:"product_id"`
	Quantity     int64           `json:"quantity"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

type CreateSaleRequest struct {
	CustomerID uint              `json:"customer_id"`
	BranchID   *uint             `json:"branch_id"` // super_admin için zorunlu
	Items      []SaleItemRequest `json:"items"`
}

type SaleItemResponse struct {
	LineNo       int             `json:"line_no"`
	ProductID    uint            `json:"product_id"`
	Quantity     int64           `json:"quantity"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

type SaleResponse struct {
	ID            string             `json:"id"`
	BranchID      uint               `json:"branch_id"`
	CustomerID    uint               `json:"customer_id"`
	InvoiceNumber string             `json:"invoice_number"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	Items         []SaleItemResponse `json:"items"`
	CreatedAt     string             `json:"created_at"`
}

func toSaleResponse(sale *models.Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(sale.Items))
	for _, it := range sale.Items {
		items = append(items, SaleItemResponse{
			LineNo:       it.LineNo,
			ProductID:    it.ProductID,
			Quantity:     it.Quantity,
			SellingPrice: it.SellingPrice,
		})
	}
	return SaleResponse{
		ID:            sale.PublicID,
		BranchID:      sale.BranchID,
		CustomerID:    sale.CustomerID,
		InvoiceNumber: sale.InvoiceNumber,
		TotalAmount:   sale.TotalAmount,
		Items:         items,
		CreatedAt:     sale.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// POST /api/sales
func CreateSaleHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.CustomerID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "customer_id zorunlu")
		}

		actor, err := auth.ActorFromCtx(c)
		if err != nil {
			return err
		}

		branchID, err := ResolveBranch(actor, body.BranchID)
		if err != nil {
			switch {
			case errors.Is(err, ErrUnassignedBranch), errors.Is(err, ErrBranchRequired):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			case errors.Is(err, ErrForeignBranch):
				return fiber.NewError(fiber.StatusForbidden, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Şube belirlenemedi")
		}

		lines := make([]SaleLine, 0, len(body.Items))
		for _, it := range body.Items {
			lines = append(lines, SaleLine{
				ProductID:    it.ProductID,
				Quantity:     it.Quantity,
				SellingPrice: it.SellingPrice,
			})
		}

		sale, err := svc.PlaceSale(c.UserContext(), PlaceSaleInput{
			BranchID:   branchID,
			CustomerID: body.CustomerID,
			Lines:      lines,
		})
		if err != nil {
			var notFound *ProductNotFoundError
			var insufficient *InsufficientStockError
			var conflict *StockConflictError
			var invalidLine *InvalidLineError
			switch {
			case errors.As(err, &notFound):
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			case errors.As(err, &insufficient), errors.As(err, &invalidLine),
				errors.Is(err, ErrNoItems), errors.Is(err, ErrBranchNotFound), errors.Is(err, ErrCustomerNotFound):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			case errors.As(err, &conflict):
				// Yeniden denemeler de çakıştı; istemci tekrar deneyebilir
				return fiber.NewError(fiber.StatusConflict, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Satış oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(toSaleResponse(sale))
	}
}

// GET /api/sales
func ListSalesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq, err := auth.BranchScope(c, database.DB.Model(&models.Sale{}))
		if err != nil {
			return err
		}

		var sales []models.Sale
		if err := dbq.
			Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("line_no asc") }).
			Order("created_at desc").
			Limit(100).
			Find(&sales).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satışlar listelenemedi")
		}

		res := make([]SaleResponse, 0, len(sales))
		for i := range sales {
			res = append(res, toSaleResponse(&sales[i]))
		}
		return c.JSON(res)
	}
}
