// Package draft 提供表单草稿的保存、读取与校验
package draft

import (
	"context"
	"time"

	"pitchcraft-ai-api/internal/domain/entity"
	"pitchcraft-ai-api/pkg/logger"
)

// DefaultPitchType 未指定类型时的默认值
const DefaultPitchType = string(entity.PitchTypeInvestor)

// Store 草稿快照存储
type Store interface {
	Save(ctx context.Context, ownerID string, draft *entity.Draft) error
	Get(ctx context.Context, ownerID string) (*entity.Draft, error)
	Clear(ctx context.Context, ownerID string) error
}

// Service 草稿服务，每个用户保留最近一份快照
type Service struct {
	store Store
}

// NewService 创建草稿服务
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Save 保存草稿快照。
// 草稿允许不完整，这里不做字段校验，只补默认类型并盖时间戳。
func (s *Service) Save(ctx context.Context, ownerID string, draft *entity.Draft) (*entity.Draft, error) {
	if draft.PitchType == "" {
		draft.PitchType = DefaultPitchType
	}
	draft.UpdatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, ownerID, draft); err != nil {
		return nil, err
	}

	logger.Debug(ctx, "draft saved", "owner_id", ownerID)
	return draft, nil
}

// Get 读取草稿快照，无草稿时返回 nil
func (s *Service) Get(ctx context.Context, ownerID string) (*entity.Draft, error) {
	return s.store.Get(ctx, ownerID)
}

// Clear 删除草稿快照，幂等
func (s *Service) Clear(ctx context.Context, ownerID string) error {
	return s.store.Clear(ctx, ownerID)
}

// Validate 校验草稿是否满足生成条件
func (s *Service) Validate(draft *entity.Draft) map[string]string {
	return draft.Validate()
}
