package main

import (
	"log"
	"strings"

	"inventory-backend/internal/admin"
	"inventory-backend/internal/auth"
	"inventory-backend/internal/config"
	"inventory-backend/internal/database"
	"inventory-backend/internal/directory"
	"inventory-backend/internal/inventory"
	"inventory-backend/internal/logger"
	"inventory-backend/internal/models"
	"inventory-backend/internal/sales"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	zlog := logger.New()
	defer zlog.Sync()

	database.Init(cfg)

	saleService := sales.NewService(database.DB, zlog)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			zlog.Error("beklenmeyen hata", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/me", auth.MeHandler())

	// Şubeler (salt okunur; super_admin satış açarken hedef şubeyi buradan
	// seçer, branch_admin zaten kendi şubesine bağlıdır)
	protected.Get("/branches", auth.RequireRole(models.RoleSuperAdmin), admin.ListBranchesHandler())

	// Tedarikçi ve müşteri yönetimi
	protected.Get("/vendors", directory.ListVendorsHandler())
	protected.Post("/vendors", directory.CreateVendorHandler())
	protected.Get("/customers", directory.ListCustomersHandler())
	protected.Post("/customers", directory.CreateCustomerHandler())

	// Ürün ve stok
	protected.Get("/products", inventory.ListProductsHandler())
	protected.Post("/products", inventory.CreateProductHandler())
	protected.Get("/stock", inventory.StockReportHandler())

	// Satışlar
	protected.Get("/sales", sales.ListSalesHandler())
	protected.Post("/sales", sales.CreateSaleHandler(saleService))

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
