package database

import (
	"fmt"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the optional relational market store and migrates its
// schema. The in-memory repositories never touch this connection; only the
// market-data client reads from it.
func Connect(dsn string, verbose bool) (*gorm.DB, error) {
	if _, err := mysqldrv.ParseDSN(dsn); err != nil {
		return nil, fmt.Errorf("invalid market store dsn: %w", err)
	}

	logLevel := logger.Warn
	if verbose {
		logLevel = logger.Info
	}
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:               dsn,
		DefaultStringSize: 191,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("market store connection failed: %w", err)
	}

	if err := db.AutoMigrate(
		&models.MarketDataPoint{},
		&models.EconomicIndicator{},
		&models.IndexPoint{},
	); err != nil {
		return nil, fmt.Errorf("market store migration failed: %w", err)
	}
	return db, nil
}
