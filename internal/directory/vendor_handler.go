package directory

import (
	"strings"

	"inventory-backend/internal/auth"
	"inventory-backend/internal/database"
	"inventory-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type VendorResponse struct {
	ID       uint   `json:"id"`
	BranchID uint   `json:"branch_id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

type CreateVendorRequest struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	BranchID *uint  `json:"branch_id"` // super_admin için opsiyonel
}

// GET /api/vendors
func ListVendorsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq, err := auth.BranchScope(c, database.DB.Model(&models.Vendor{}))
		if err != nil {
			return err
		}

		var vendors []models.Vendor
		if err := dbq.Order("name asc").Find(&vendors).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tedarikçiler listelenemedi")
		}

		res := make([]VendorResponse, 0, len(vendors))
		for _, v := range vendors {
			res = append(res, VendorResponse{
				ID:       v.ID,
				BranchID: v.BranchID,
				Name:     v.Name,
				Address:  v.Address,
				Phone:    v.Phone,
			})
		}
		return c.JSON(res)
	}
}

// POST /api/vendors
func CreateVendorHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateVendorRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name zorunlu")
		}

		actor, err := auth.ActorFromCtx(c)
		if err != nil {
			return err
		}
		branchID, err := auth.CreateBranchID(actor, body.BranchID)
		if err != nil {
			return err
		}

		v := models.Vendor{
			BranchID: branchID,
			Name:     body.Name,
			Address:  strings.TrimSpace(body.Address),
			Phone:    strings.TrimSpace(body.Phone),
		}

		if err := database.DB.Create(&v).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tedarikçi oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(VendorResponse{
			ID:       v.ID,
			BranchID: v.BranchID,
			Name:     v.Name,
			Address:  v.Address,
			Phone:    v.Phone,
		})
	}
}
