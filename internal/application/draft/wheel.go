package draft

import (
	"context"
	"math/rand/v2"
	"time"

	"pitchcraft-ai-api/internal/domain/entity"
)

// Wheel 行业转盘：等待固定时长后等概率选取一个行业
type Wheel struct {
	delay time.Duration
}

// NewWheel 创建行业转盘
func NewWheel(delay time.Duration) *Wheel {
	return &Wheel{delay: delay}
}

// Spin 转动转盘。候选为空时使用系统默认行业集合。
// 等待期间上下文取消则立即返回，不产生选中结果。
func (w *Wheel) Spin(ctx context.Context, candidates []string) (string, error) {
	if len(candidates) == 0 {
		candidates = entity.DefaultIndustries
	}

	timer := time.NewTimer(w.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
	}

	return candidates[rand.IntN(len(candidates))], nil
}
