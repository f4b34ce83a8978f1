package mysql

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Open 建立 MySQL 连接，TranslateError 用于识别唯一键冲突
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
}
