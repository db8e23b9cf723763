// Package redis 提供 Redis 草稿存储实现
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"pitchcraft-ai-api/internal/domain/entity"
)

var draftTracer = otel.Tracer("redis.draft")

// DraftStore 每用户一份的表单草稿存储
type DraftStore struct {
	client *Client
	ttl    time.Duration
}

// NewDraftStore 创建草稿存储
func NewDraftStore(client *Client, ttl time.Duration) *DraftStore {
	return &DraftStore{
		client: client,
		ttl:    ttl,
	}
}

func draftKey(ownerID string) string {
	return fmt.Sprintf("draft:%s", ownerID)
}

// Save 覆盖保存草稿快照并刷新 TTL
func (s *DraftStore) Save(ctx context.Context, ownerID string, draft *entity.Draft) error {
	ctx, span := draftTracer.Start(ctx, "draft.Save",
		trace.WithAttributes(attribute.String("draft.owner_id", ownerID)))
	defer span.End()

	bytes, err := json.Marshal(draft)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	if err := s.client.rdb.Set(ctx, draftKey(ownerID), bytes, s.ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// Get 读取草稿快照，无草稿时返回 nil
func (s *DraftStore) Get(ctx context.Context, ownerID string) (*entity.Draft, error) {
	ctx, span := draftTracer.Start(ctx, "draft.Get",
		trace.WithAttributes(attribute.String("draft.owner_id", ownerID)))
	defer span.End()

	bytes, err := s.client.rdb.Get(ctx, draftKey(ownerID)).Bytes()
	if err != nil {
		if IsNil(err) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}

	var draft entity.Draft
	if err := json.Unmarshal(bytes, &draft); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &draft, nil
}

// Clear 删除草稿快照，幂等
func (s *DraftStore) Clear(ctx context.Context, ownerID string) error {
	ctx, span := draftTracer.Start(ctx, "draft.Clear",
		trace.WithAttributes(attribute.String("draft.owner_id", ownerID)))
	defer span.End()

	if err := s.client.rdb.Del(ctx, draftKey(ownerID)).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to clear draft: %w", err)
	}
	return nil
}
