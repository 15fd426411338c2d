package inventory

import (
	"strings"

	"inventory-backend/internal/auth"
	"inventory-backend/internal/database"
	"inventory-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	ID            uint            `json:"id"`
	BranchID      uint            `json:"branch_id"`
	VendorID      uint            `json:"vendor_id"`
	Name          string          `json:"name"`
	Quantity      int64           `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
}

type CreateProductRequest struct {
	Name          string          `json:"name"`
	VendorID      uint            `json:"vendor_id"`
	Quantity      int64           `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	BranchID      *uint           `json:"branch_id"` // super_admin için opsiyonel
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		BranchID:      p.BranchID,
		VendorID:      p.VendorID,
		Name:          p.Name,
		Quantity:      p.Quantity,
		PurchasePrice: p.PurchasePrice,
		SellingPrice:  p.SellingPrice,
	}
}

// GET /api/products
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq, err := auth.BranchScope(c, database.DB.Model(&models.Product{}))
		if err != nil {
			return err
		}

		var products []models.Product
		if err := dbq.Order("name asc").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürünler listelenemedi")
		}

		res := make([]ProductResponse, 0, len(products))
		for _, p := range products {
			res = append(res, toProductResponse(p))
		}
		return c.JSON(res)
	}
}

// POST /api/products
// Quantity burada başlangıç stoğudur; sonrasında stok sadece satışla
// (atomik düşüm) değişir.
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" || body.VendorID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Name ve vendor_id zorunlu")
		}
		if body.Quantity < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Quantity negatif olamaz")
		}
		if body.PurchasePrice.IsNegative() || body.SellingPrice.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "Fiyatlar negatif olamaz")
		}

		actor, err := auth.ActorFromCtx(c)
		if err != nil {
			return err
		}
		branchID, err := auth.CreateBranchID(actor, body.BranchID)
		if err != nil {
			return err
		}

		// Tedarikçi aynı şubede mi kontrol et
		var vendor models.Vendor
		if err := database.DB.First(&vendor, "id = ? AND branch_id = ?", body.VendorID, branchID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tedarikçi bu şubede bulunamadı")
		}

		p := models.Product{
			BranchID:      branchID,
			VendorID:      body.VendorID,
			Name:          body.Name,
			Quantity:      body.Quantity,
			PurchasePrice: body.PurchasePrice,
			SellingPrice:  body.SellingPrice,
		}

		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(toProductResponse(p))
	}
}
