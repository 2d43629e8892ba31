package database

import (
	"BrainRotBGone/config"
	"BrainRotBGone/models"
	"BrainRotBGone/pkg/log"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDB 初始化数据库连接并迁移表结构
func NewDB(conf *config.Database) (*gorm.DB, error) {
	dialector, err := dialectorFor(conf)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         log.NewGormLogger(conf.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		log.L.Error("failed to connect database", zap.String("driver", conf.Driver), zap.Error(err))
		return nil, err
	}

	if conf.Driver == config.DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// one writer at a time, otherwise sqlite answers "database is locked"
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.L.Info("connect database success", zap.String("driver", conf.Driver))
	return db, nil
}

func dialectorFor(conf *config.Database) (gorm.Dialector, error) {
	switch conf.Driver {
	case config.DriverSQLite, "":
		path := conf.Path
		if path == "" {
			path = "brainrotbgone.db"
		}
		return sqlite.Open(path), nil
	case config.DriverMySQL:
		return mysql.Open(conf.Dsn), nil
	case config.DriverPostgres:
		return postgres.Open(conf.Dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
	}
}

// Migrate creates the tables and indexes if they are missing.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.PostLike{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
