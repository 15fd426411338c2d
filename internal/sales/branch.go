package sales

import (
	"inventory-backend/internal/auth"
	"inventory-backend/internal/models"
)

// ResolveBranch - Satışın hedef şubesini istek sahibinden türetir.
// branch_admin her zaman kendi şubesine satış açar, istekle başka şube
// belirtemez. super_admin için şube zorunludur: vendor/customer/product
// oluşturmadaki "ilk şubeye düş" davranışı satışta geçerli değildir, yanlış
// şubenin stoğunun sessizce düşmesine yol açardı.
func ResolveBranch(actor auth.Actor, requested *uint) (uint, error) {
	if actor.Role == models.RoleBranchAdmin {
		if actor.BranchID == nil {
			return 0, ErrUnassignedBranch
		}
		if requested != nil && *requested != 0 && *requested != *actor.BranchID {
			return 0, ErrForeignBranch
		}
		return *actor.BranchID, nil
	}

	// super_admin
	if requested == nil || *requested == 0 {
		return 0, ErrBranchRequired
	}
	return *requested, nil
}
