package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/linskybing/portal-go/internal/config"
	"github.com/linskybing/portal-go/internal/domain/contact"
	"github.com/linskybing/portal-go/internal/domain/payment"
	"github.com/linskybing/portal-go/internal/domain/questionnaire"
	"github.com/linskybing/portal-go/internal/domain/request"
	"github.com/linskybing/portal-go/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

var DB *gorm.DB

const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = 5 * time.Minute
	sqlitePrefix    = "sqlite://"
)

// Init connects with the loaded configuration and migrates the schema.
func Init() error {
	var err error
	DB, err = Open(dsnFromConfig())
	if err != nil {
		return err
	}
	if err := Migrate(DB); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func dsnFromConfig() string {
	if config.DatabaseURL != "" {
		return config.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)
}

// Open connects to postgres, or to a pure Go sqlite database when dsn starts with sqlite://.
func Open(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	sqliteMode := strings.HasPrefix(dsn, sqlitePrefix)
	if sqliteMode {
		path := strings.TrimPrefix(dsn, sqlitePrefix)
		sqlDB, err := sql.Open("sqlite", path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		dialector = sqlite.Dialector{DriverName: "sqlite", DSN: path, Conn: sqlDB}
	} else {
		dialector = postgres.Open(dsn)
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	if sqliteMode {
		// one writer keeps in-memory databases on a single connection
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetMaxIdleConns(maxIdleConns)
		sqlDB.SetConnMaxLifetime(connMaxLifetime)
	}
	return gormDB, nil
}

func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&user.User{},
		&request.WebsiteRequest{},
		&questionnaire.Questionnaire{},
		&questionnaire.Attachment{},
		&payment.Payment{},
		&contact.Inquiry{},
	)
}
