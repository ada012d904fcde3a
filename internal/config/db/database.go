package db

import (
	"fmt"
	"log"

	"github.com/linskybing/litreview-go/internal/config"
	"github.com/linskybing/litreview-go/internal/domain/audit"
	"github.com/linskybing/litreview-go/internal/domain/review"
	"github.com/linskybing/litreview-go/internal/domain/social"
	"github.com/linskybing/litreview-go/internal/domain/ticket"
	"github.com/linskybing/litreview-go/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// Migrate creates or updates every table the service owns.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&user.User{},
		&ticket.Ticket{},
		&review.Review{},
		&social.Follow{},
		&social.Block{},
		&audit.AuditLog{},
	)
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
