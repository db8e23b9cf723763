// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"pitchcraft-ai-api/internal/domain/entity"
)

// FeedbackRepository 反馈仓储实现
type FeedbackRepository struct {
	client *Client
}

// NewFeedbackRepository 创建反馈仓储
func NewFeedbackRepository(client *Client) *FeedbackRepository {
	return &FeedbackRepository{client: client}
}

// Create 追加一条反馈
func (r *FeedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	ctx, span := tracer.Start(ctx, "postgres.FeedbackRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(feedback).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

// ListByPitch 按路演稿查询反馈
func (r *FeedbackRepository) ListByPitch(ctx context.Context, pitchID string) ([]*entity.Feedback, error) {
	ctx, span := tracer.Start(ctx, "postgres.FeedbackRepository.ListByPitch")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var feedbacks []*entity.Feedback
	if err := db.Where("pitch_id = ?", pitchID).Order("created_at ASC").Find(&feedbacks).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return feedbacks, nil
}
