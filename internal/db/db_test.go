package db

import (
	"path/filepath"
	"testing"

	"github.com/Yersat/chatcode/internal/config"
	"github.com/Yersat/chatcode/internal/model"
)

// 测试内容：验证使用 sqlite 临时文件初始化数据库并创建核心表。
func TestOpen_SQLiteTempFile(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "db", "test.db")

	gdb, err := Open(config.DatabaseConfig{Type: "sqlite", Filename: dbFile})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	sqlDB, _ := gdb.DB()
	defer func() { _ = sqlDB.Close() }()

	if !gdb.Migrator().HasTable(&model.User{}) {
		t.Fatalf("期望 users 表存在")
	}
	if !gdb.Migrator().HasTable(&model.Setting{}) {
		t.Fatalf("期望 settings 表存在")
	}
	if !gdb.Migrator().HasIndex(&model.User{}, "idx_users_social") {
		t.Fatalf("期望社交账号唯一索引存在")
	}
}

// 测试内容：验证 InitDB 读取全局配置并设置全局 DB。
func TestInitDB_UsesGlobalConfig(t *testing.T) {
	config.Set(config.Config{Database: config.DatabaseConfig{
		Type:     "sqlite",
		Filename: filepath.Join(t.TempDir(), "global.db"),
	}})

	if err := InitDB(); err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer func() { _ = Close() }()
	if DB == nil {
		t.Fatalf("期望全局 DB 已初始化")
	}
}

// 测试内容：验证未知数据库类型会返回错误。
func TestOpen_UnsupportedType(t *testing.T) {
	if _, err := Open(config.DatabaseConfig{Type: "oracle"}); err == nil {
		t.Fatalf("期望不支持的数据库类型返回错误")
	}
}
