package storage

import (
	"os"
	"sync"
	"time"

	"casterdesk-backend/internal/config"
	"casterdesk-backend/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var log = logger.GetLogger()

var (
	db   *gorm.DB
	once sync.Once
)

func GetDb() *gorm.DB {
	once.Do(connect)
	return db
}

func connect() {
	dsn := config.GetEnv().DatabaseDsn

	gormDb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	sqlDb, err := gormDb.DB()
	if err != nil {
		log.Error("Failed to get database handle", "error", err)
		os.Exit(1)
	}

	sqlDb.SetMaxOpenConns(20)
	sqlDb.SetMaxIdleConns(5)
	sqlDb.SetConnMaxLifetime(time.Hour)

	db = gormDb
}

// Migrate creates or updates the schema for the given models.
// Called once from main before the server starts serving requests.
func Migrate(models ...any) error {
	return GetDb().AutoMigrate(models...)
}
