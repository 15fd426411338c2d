package directory

import (
	"strings"

	"inventory-backend/internal/auth"
	"inventory-backend/internal/database"
	"inventory-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CustomerResponse struct {
	ID       uint   `json:"id"`
	BranchID uint   `json:"branch_id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

type CreateCustomerRequest struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	BranchID *uint  `json:"branch_id"` // super_admin için opsiyonel
}

// GET /api/customers
func ListCustomersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq, err := auth.BranchScope(c, database.DB.Model(&models.Customer{}))
		if err != nil {
			return err
		}

		var customers []models.Customer
		if err := dbq.Order("name asc").Find(&customers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteriler listelenemedi")
		}

		res := make([]CustomerResponse, 0, len(customers))
		for _, m := range customers {
			res = append(res, CustomerResponse{
				ID:       m.ID,
				BranchID: m.BranchID,
				Name:     m.Name,
				Address:  m.Address,
				Phone:    m.Phone,
			})
		}
		return c.JSON(res)
	}
}

// POST /api/customers
func CreateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCustomerRequest
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

		m := models.Customer{
			BranchID: branchID,
			Name:     body.Name,
			Address:  strings.TrimSpace(body.Address),
			Phone:    strings.TrimSpace(body.Phone),
		}

		if err := database.DB.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteri oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(CustomerResponse{
			ID:       m.ID,
			BranchID: m.BranchID,
			Name:     m.Name,
			Address:  m.Address,
			Phone:    m.Phone,
		})
	}
}
