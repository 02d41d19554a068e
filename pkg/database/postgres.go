package database

import (
	"log"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Departamento{},
		&models.Municipio{},
		&models.EventStatus{},
		&models.TransactionStatus{},
		&models.PaymentMethod{},
		&models.MusicGenre{},
		&models.Role{},
		&models.Locality{},
		&models.Event{},
		&models.Artist{},
		&models.PricingTier{},
		&models.User{},
		&models.Purchase{},
		&models.ArtistBooking{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Availability may never go negative or exceed capacity, whatever the
	// interleaving of reservations and releases.
	db.Exec(`
		ALTER TABLE localidad_detalle
		DROP CONSTRAINT IF EXISTS chk_cantidad_disponible,
		ADD CONSTRAINT chk_cantidad_disponible
		CHECK (cantidad_disponible >= 0 AND cantidad_disponible <= cantidad_total)
	`)

	return db
}

// Seed inserts the reference rows the purchase and booking flows depend on.
// It is idempotent: existing rows are left untouched.
func Seed(db *gorm.DB) {
	eventStatuses := []models.EventStatus{{Name: "programado"}, {Name: "en_curso"}, {Name: "finalizado"}, {Name: "cancelado"}}
	for _, s := range eventStatuses {
		db.Where(models.EventStatus{Name: s.Name}).FirstOrCreate(&s)
	}

	txStatuses := []models.TransactionStatus{{Name: "pendiente"}, {Name: "aprobada"}, {Name: "rechazada"}}
	for _, s := range txStatuses {
		db.Where(models.TransactionStatus{Name: s.Name}).FirstOrCreate(&s)
	}

	methods := []models.PaymentMethod{{Name: "efectivo"}, {Name: "tarjeta_credito"}, {Name: "tarjeta_debito"}, {Name: "pse"}}
	for _, m := range methods {
		db.Where(models.PaymentMethod{Name: m.Name}).FirstOrCreate(&m)
	}

	roles := []models.Role{{Name: "administrador"}, {Name: "organizador"}, {Name: "cliente"}}
	for _, r := range roles {
		db.Where(models.Role{Name: r.Name}).FirstOrCreate(&r)
	}
}
