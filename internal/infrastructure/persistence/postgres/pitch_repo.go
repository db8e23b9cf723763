// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"pitchcraft-ai-api/internal/domain/entity"
	"pitchcraft-ai-api/internal/domain/repository"
	apperrors "pitchcraft-ai-api/pkg/errors"
)

// PitchRepository 路演稿仓储实现
type PitchRepository struct {
	client *Client
}

// NewPitchRepository 创建路演稿仓储
func NewPitchRepository(client *Client) *PitchRepository {
	return &PitchRepository{client: client}
}

// CreateBatch 批量插入一次生成产出的所有变体。
// 部分写入（批中途失败）同样以错误上报，不做静默处理。
func (r *PitchRepository) CreateBatch(ctx context.Context, pitches []*entity.Pitch) error {
	ctx, span := tracer.Start(ctx, "postgres.PitchRepository.CreateBatch")
	defer span.End()

	if len(pitches) == 0 {
		return nil
	}

	db := getDB(ctx, r.client.db)
	if err := db.Create(&pitches).Error; err != nil {
		span.RecordError(err)
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to save pitches")
	}
	return nil
}

// ListByOwner 按属主查询，可选行业/类型精确过滤，统一按 created_at 降序
func (r *PitchRepository) ListByOwner(ctx context.Context, ownerID string, filter repository.PitchFilter) ([]*entity.Pitch, error) {
	ctx, span := tracer.Start(ctx, "postgres.PitchRepository.ListByOwner")
	defer span.End()

	db := getDB(ctx, r.client.db)
	query := db.Model(&entity.Pitch{}).Where("owner_id = ?", ownerID)

	if filter.Industry != "" {
		query = query.Where("industry = ?", filter.Industry)
	}
	if filter.PitchType != "" {
		query = query.Where("pitch_type = ?", filter.PitchType)
	}

	var pitches []*entity.Pitch
	if err := query.Order("created_at DESC").Find(&pitches).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list pitches: %w", err)
	}
	return pitches, nil
}

// GetByIDForOwner 按 (id, owner) 查询。
// 不存在与属于其它用户都返回 nil，不向调用方泄露跨属主的存在性。
func (r *PitchRepository) GetByIDForOwner(ctx context.Context, ownerID, id string) (*entity.Pitch, error) {
	ctx, span := tracer.Start(ctx, "postgres.PitchRepository.GetByIDForOwner")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var pitch entity.Pitch
	if err := db.First(&pitch, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get pitch: %w", err)
	}
	return &pitch, nil
}

// UpdateText 覆盖正文并返回更新后的记录
func (r *PitchRepository) UpdateText(ctx context.Context, ownerID, id, text string) (*entity.Pitch, error) {
	ctx, span := tracer.Start(ctx, "postgres.PitchRepository.UpdateText")
	defer span.End()

	pitch, err := r.GetByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if pitch == nil {
		return nil, apperrors.ErrPitchNotFound
	}

	db := getDB(ctx, r.client.db)
	pitch.Text = text
	if err := db.Save(pitch).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to update pitch text: %w", err)
	}
	return pitch, nil
}
