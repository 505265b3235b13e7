package client

import (
	"log"
	"time"

	"marketplace-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func InitMysqlClient(databaseURL string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(db); err != nil {
		log.Fatal(err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Seller{},
		&model.Admin{},
		&model.AdminEmail{},
		&model.Category{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.Return{},
		&model.Address{},
		&model.Payment{},
	)
}

// SeedAdminEmail inserts the canonical admin address into the allowlist if
// it is not there yet.
func SeedAdminEmail(db *gorm.DB, email string) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.AdminEmail{Email: email, Active: true}).Error
}
