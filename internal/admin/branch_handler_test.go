package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inventory-backend/internal/auth"
	"inventory-backend/internal/config"
	"inventory-backend/internal/database"
	"inventory-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTest(t *testing.T) (*gorm.DB, *fiber.App, *config.Config) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s/test.db?_busy_timeout=10000&_txlock=immediate&_foreign_keys=on", t.TempDir())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })

	cfg := &config.Config{JWTSecret: strings.Repeat("s", 32)}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Beklenmeyen sunucu hatası"})
		},
	})
	api := app.Group("/api")
	api.Use(auth.JWTMiddleware(cfg))
	api.Get("/branches", auth.RequireRole(models.RoleSuperAdmin), ListBranchesHandler())
	return db, app, cfg
}

func get(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestListBranchesSuperAdminOnly(t *testing.T) {
	db, app, cfg := setupTest(t)

	branchA := models.Branch{Name: "Branch A", Code: "BRA"}
	branchB := models.Branch{Name: "Branch B", Code: "BRB"}
	require.NoError(t, db.Create(&branchA).Error)
	require.NoError(t, db.Create(&branchB).Error)

	adminUser := &models.User{ID: 1, Username: "admin", Role: models.RoleSuperAdmin}
	adminToken, err := auth.GenerateToken(cfg.JWTSecret, adminUser)
	require.NoError(t, err)

	resp := get(t, app, "/api/branches", adminToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var branches []BranchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&branches))
	require.Len(t, branches, 2)
	assert.Equal(t, "BRA", branches[0].Code)
	assert.Equal(t, "BRB", branches[1].Code)

	// branch_admin şube listesine erişemez, kendi şubesine zaten bağlıdır
	branchUser := &models.User{ID: 2, Username: "sube", Role: models.RoleBranchAdmin, BranchID: &branchA.ID}
	branchToken, err := auth.GenerateToken(cfg.JWTSecret, branchUser)
	require.NoError(t, err)

	resp = get(t, app, "/api/branches", branchToken)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Token olmadan hiç erişilemez
	resp = get(t, app, "/api/branches", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
