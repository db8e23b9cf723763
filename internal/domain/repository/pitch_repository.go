// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"pitchcraft-ai-api/internal/domain/entity"
)

// PitchFilter 路演稿列表过滤条件，空字段表示不过滤
type PitchFilter struct {
	Industry  string
	PitchType string
}

// PitchRepository 路演稿仓储接口
type PitchRepository interface {
	// CreateBatch 批量插入一次生成产出的所有变体。
	// 底层存储不保证批内原子性，部分写入同样以错误上报。
	CreateBatch(ctx context.Context, pitches []*entity.Pitch) error

	// ListByOwner 按属主查询，可选行业/类型精确过滤，按 created_at 降序返回
	ListByOwner(ctx context.Context, ownerID string, filter PitchFilter) ([]*entity.Pitch, error)

	// GetByIDForOwner 按 (id, owner) 查询；不存在与跨属主访问同样返回 nil
	GetByIDForOwner(ctx context.Context, ownerID, id string) (*entity.Pitch, error)

	// UpdateText 覆盖指定路演稿的正文并返回更新后的记录
	UpdateText(ctx context.Context, ownerID, id, text string) (*entity.Pitch, error)
}

// FeedbackRepository 反馈仓储接口
type FeedbackRepository interface {
	// Create 追加一条反馈
	Create(ctx context.Context, feedback *entity.Feedback) error

	// ListByPitch 按路演稿查询反馈，按 created_at 升序
	ListByPitch(ctx context.Context, pitchID string) ([]*entity.Feedback, error)
}
