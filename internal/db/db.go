package db

import (
	"log"
	"time"

	"github.com/navalhaapp/barber-dashboard/internal/config"
	"github.com/navalhaapp/barber-dashboard/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
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
		&models.Barbershop{},
		&models.User{},
		&models.Barber{},
		&models.Client{},
		&models.BarberService{},
		&models.RetailProduct{},
		&models.OperatingHours{},
		&models.UnavailabilityBlock{},
		&models.Appointment{},
		&models.VisitService{},
		&models.VisitProduct{},
		&models.Plan{},
		&models.PlanBenefit{},
		&models.Subscription{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE barbershops
        SET timezone = 'America/Sao_Paulo'
        WHERE timezone IS NULL OR timezone = ''
    `)

	// Database-level backstop against two sessions racing for the same slot.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appt_slot_active
        ON appointments (barber_id, date, time)
        WHERE status IN ('pendente', 'confirmado', 'atendido')
    `)

	return db
}
