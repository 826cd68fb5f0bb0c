package db

import (
	"fmt"

	"github.com/MyelinBots/matchbot-go/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB wraps the gorm handle so repositories share one connection pool.
type DB struct {
	DB *gorm.DB
}

func NewDatabase(cfg config.DBConfig) (*DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.DataBase, cfg.Port, cfg.SSLMode,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	return &DB{DB: gormDB}, nil
}
