package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/libertaapp/atendimentos-api/internal/config"
	"github.com/libertaapp/atendimentos-api/internal/models"
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
		&models.TipoServico{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedTiposServico(db)

	return db
}

// seedTiposServico garante o catálogo mínimo de serviços.
func seedTiposServico(db *gorm.DB) {
	defaults := []models.TipoServico{
		{Slug: "tarot", Nome: "Tarot", Preco: 100, Active: true},
		{Slug: "terapia", Nome: "Terapia", Preco: 120, Active: true},
		{Slug: "mesa-radionica", Nome: "Mesa Radiônica", Preco: 150, Active: true},
		{Slug: models.TipoTarotFrequencial, Nome: "Tarot Frequencial", Preco: 150, Active: true},
	}

	for _, t := range defaults {
		var count int64
		db.Model(&models.TipoServico{}).Where("slug = ?", t.Slug).Count(&count)
		if count == 0 {
			db.Create(&t)
		}
	}
}
