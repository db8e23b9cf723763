package postgres

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pitchcraft-ai-api/internal/domain/entity"
)

// newTestClient 使用内存 SQLite 构造仓储测试用客户端
func newTestClient(t *testing.T) *Client {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Pitch{},
		&entity.Feedback{},
		&entity.Industry{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return &Client{db: db}
}
