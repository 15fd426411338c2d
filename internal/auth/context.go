package auth

import (
	"fmt"

	"inventory-backend/internal/database"
	"inventory-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Actor - JWT'den çözülen istek sahibi. Şube türetme mantığı her handler'da
// tekrar yazılmasın diye burada tek yerde toplanır.
type Actor struct {
	UserID   uint
	Role     models.UserRole
	BranchID *uint
}

func ActorFromCtx(c *fiber.Ctx) (Actor, error) {
	role, ok := c.Locals(CtxUserRoleKey).(models.UserRole)
	if !ok {
		return Actor{}, fiber.NewError(fiber.StatusForbidden, "Rol bilgisi alınamadı")
	}

	userID, ok := c.Locals(CtxUserIDKey).(uint)
	if !ok {
		return Actor{}, fiber.NewError(fiber.StatusForbidden, "Kullanıcı bilgisi alınamadı")
	}

	var branchID *uint
	if bPtr, ok := c.Locals(CtxBranchIDKey).(*uint); ok && bPtr != nil {
		branchID = bPtr
	}

	return Actor{UserID: userID, Role: role, BranchID: branchID}, nil
}

// BranchScope - Listeleme sorguları için şube görünürlüğü uygular:
// super_admin tüm şubeleri görür (isterse ?branch_id= ile daraltır),
// branch_admin sadece kendi şubesini görür.
func BranchScope(c *fiber.Ctx, dbq *gorm.DB) (*gorm.DB, error) {
	actor, err := ActorFromCtx(c)
	if err != nil {
		return nil, err
	}

	if actor.Role == models.RoleBranchAdmin {
		if actor.BranchID == nil {
			return nil, fiber.NewError(fiber.StatusForbidden, "Şube bilgisi bulunamadı")
		}
		return dbq.Where("branch_id = ?", *actor.BranchID), nil
	}

	// super_admin: opsiyonel filtre
	if bidStr := c.Query("branch_id"); bidStr != "" {
		var bid uint
		if _, err := fmt.Sscan(bidStr, &bid); err != nil || bid == 0 {
			return nil, fiber.NewError(fiber.StatusBadRequest, "branch_id geçersiz")
		}
		return dbq.Where("branch_id = ?", bid), nil
	}
	return dbq, nil
}

// CreateBranchID - Vendor/customer/product oluşturma için şube türetir:
// branch_admin her zaman kendi şubesine yazar, super_admin body'de şube
// verebilir, vermezse ilk şubeye düşülür.
// Satış oluşturma bu fonksiyonu KULLANMAZ; orada super_admin için şube
// zorunludur (sales.ResolveBranch).
func CreateBranchID(actor Actor, bodyBranchID *uint) (uint, error) {
	if actor.Role == models.RoleBranchAdmin {
		if actor.BranchID == nil {
			return 0, fiber.NewError(fiber.StatusBadRequest, "Kullanıcıya atanmış şube yok")
		}
		return *actor.BranchID, nil
	}

	// super_admin
	if bodyBranchID != nil && *bodyBranchID != 0 {
		return *bodyBranchID, nil
	}
	var firstBranch models.Branch
	if err := database.DB.Order("id asc").First(&firstBranch).Error; err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Kayıtlı şube yok")
	}
	return firstBranch.ID, nil
}
