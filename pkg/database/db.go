package database

import (
	"Backoffice/config"
	"Backoffice/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) (*gorm.DB, error) {
	logLevel := logger.Warn
	if conf.Debug() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(conf.MySQL.Dsn()), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		log.L.Error("failed to connect database", zap.Error(err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if conf.MySQL.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conf.MySQL.MaxOpenConns)
	}
	if conf.MySQL.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(conf.MySQL.MaxIdleConns)
	}
	if conf.MySQL.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(conf.MySQL.ConnMaxLifetime)
	}

	log.L.Info("connect database success", zap.String("host", conf.MySQL.Host), zap.String("database", conf.MySQL.Database))
	return db, nil
}
