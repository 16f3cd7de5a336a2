package db

import (
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/puravida-ops/casitas-api/internal/config"
	"github.com/puravida-ops/casitas-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Revision{},
		&models.Note{},
		&models.EditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE users
        SET role = 'inspector'
        WHERE role IS NULL OR role = ''
    `)

	seedUsers(db, cfg)

	return db
}

// Known inspection staff. Seeded once so they can log in; the first
// entry is the supervisor account.
var seedReviewers = []string{
	"Ricardo B", "Michael J", "Ramiro Q", "Adrian S", "Esteban B",
	"Willy G", "Juan M", "Olman Z", "Daniel V", "Jefferson V",
	"Cristopher G", "Emerson S", "Joseph R",
}

func seedUsers(db *gorm.DB, cfg *config.Config) {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("seed users: %v", err)
		return
	}

	for i, name := range seedReviewers {
		role := models.RoleInspector
		if i == 0 {
			role = models.RoleSupervisor
		}
		user := models.User{
			Name:         name,
			Username:     usernameFor(name),
			PasswordHash: string(hashed),
			Role:         role,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("seed user %s: %v", user.Username, err)
		}
	}
}

func usernameFor(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "."))
}
