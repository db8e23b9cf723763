// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"pitchcraft-ai-api/internal/domain/entity"
)

// IndustryRepository 行业仓储接口
type IndustryRepository interface {
	// Create 插入一个新行业；名称全局唯一，冲突返回 ErrIndustryConflict
	Create(ctx context.Context, industry *entity.Industry) error

	// ListVisible 返回系统默认行业与调用者自建行业的并集
	ListVisible(ctx context.Context, ownerID string) ([]*entity.Industry, error)

	// SeedDefaults 重置系统默认行业集合（仅 bootstrap 使用）
	SeedDefaults(ctx context.Context, names []string) error
}
