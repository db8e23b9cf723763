// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"pitchcraft-ai-api/internal/domain/entity"
	apperrors "pitchcraft-ai-api/pkg/errors"
)

// uniqueViolation PostgreSQL 唯一约束冲突错误码
const uniqueViolation = "23505"

// IndustryRepository 行业仓储实现
type IndustryRepository struct {
	client *Client
}

// NewIndustryRepository 创建行业仓储
func NewIndustryRepository(client *Client) *IndustryRepository {
	return &IndustryRepository{client: client}
}

// Create 插入一个新行业；名称全局唯一
func (r *IndustryRepository) Create(ctx context.Context, industry *entity.Industry) error {
	ctx, span := tracer.Start(ctx, "postgres.IndustryRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(industry).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrIndustryConflict
		}
		span.RecordError(err)
		return fmt.Errorf("failed to create industry: %w", err)
	}
	return nil
}

// ListVisible 返回系统默认行业与调用者自建行业的并集
func (r *IndustryRepository) ListVisible(ctx context.Context, ownerID string) ([]*entity.Industry, error) {
	ctx, span := tracer.Start(ctx, "postgres.IndustryRepository.ListVisible")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var industries []*entity.Industry
	if err := db.
		Where("owner_id IS NULL OR owner_id = ?", ownerID).
		Order("owner_id IS NOT NULL, name ASC").
		Find(&industries).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list industries: %w", err)
	}
	return industries, nil
}

// SeedDefaults 重置系统默认行业集合，仅供 bootstrap 使用
func (r *IndustryRepository) SeedDefaults(ctx context.Context, names []string) error {
	ctx, span := tracer.Start(ctx, "postgres.IndustryRepository.SeedDefaults")
	defer span.End()

	return NewTxManager(r.client).WithTransaction(ctx, func(txCtx context.Context) error {
		db := getDB(txCtx, r.client.db)
		if err := db.Where("owner_id IS NULL").Delete(&entity.Industry{}).Error; err != nil {
			return fmt.Errorf("failed to clear default industries: %w", err)
		}
		for _, name := range names {
			if err := db.Create(&entity.Industry{Name: name}).Error; err != nil {
				return fmt.Errorf("failed to seed industry %s: %w", name, err)
			}
		}
		return nil
	})
}

// isUniqueViolation 识别唯一约束冲突。
// GORM 的 TranslateError 覆盖大多数情况；pq 错误码兜底老的 database/sql 路径。
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return true
	}
	return false
}
