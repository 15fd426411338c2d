package database

import (
	"log"

	"inventory-backend/internal/config"
	"inventory-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	if err := SeedDefaults(DB, cfg.AdminDefaultPassword); err != nil {
		log.Fatalf("Varsayılan veriler oluşturulamadı: %v", err)
	}

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Branch{},
		&models.User{},
		&models.Vendor{},
		&models.Customer{},
		&models.Product{},
		&models.Sale{},
		&models.SaleItem{},
		&models.InvoiceCounter{},
	)
}

// SeedDefaults - İlk kurulum verileri: super admin kullanıcısı ve iki şube.
// Kayıtlar zaten varsa dokunulmaz.
func SeedDefaults(db *gorm.DB, adminPassword string) error {
	var adminCount int64
	if err := db.Model(&models.User{}).
		Where("role = ?", models.RoleSuperAdmin).
		Count(&adminCount).Error; err != nil {
		return err
	}
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.User{
			Name:         "Admin",
			Username:     "admin",
			Email:        "admin@example.com",
			PasswordHash: string(hash),
			Role:         models.RoleSuperAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Println("Varsayılan super admin kullanıcısı oluşturuldu (username: admin)")
	}

	defaultBranches := []models.Branch{
		{Name: "Branch A", Code: "BRA", Address: "Branch A Address"},
		{Name: "Branch B", Code: "BRB", Address: "Branch B Address"},
	}
	for _, b := range defaultBranches {
		var count int64
		if err := db.Model(&models.Branch{}).
			Where("code = ?", b.Code).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&b).Error; err != nil {
				return err
			}
			log.Printf("Varsayılan şube oluşturuldu: %s (%s)", b.Name, b.Code)
		}
	}

	return nil
}
