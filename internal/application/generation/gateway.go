// Package generation 封装路演稿生成的完整流程
package generation

import (
	"context"
	"sort"
	"strings"
	"time"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"pitchcraft-ai-api/internal/domain/entity"
	"pitchcraft-ai-api/internal/domain/repository"
	apperrors "pitchcraft-ai-api/pkg/errors"
	"pitchcraft-ai-api/pkg/logger"
	"pitchcraft-ai-api/pkg/metrics"
)

// Request 一次生成请求的表单内容
type Request struct {
	StartupName string
	Industry    string
	Problem     string
	Solution    string
	Audience    string
	PitchType   string
}

// ModelProvider 提供生成调用所需的 ChatModel
type ModelProvider interface {
	Default(ctx context.Context) (einomodel.BaseChatModel, error)
	DefaultModelName() (provider, model string)
}

// Gateway 生成网关：校验、调用模型、解析并落库
type Gateway struct {
	factory ModelProvider
	pitches repository.PitchRepository
}

// NewGateway 创建生成网关
func NewGateway(factory ModelProvider, pitches repository.PitchRepository) *Gateway {
	return &Gateway{
		factory: factory,
		pitches: pitches,
	}
}

// Generate 执行一次完整的生成流程，成功时返回三个已持久化的变体
func (g *Gateway) Generate(ctx context.Context, ownerID string, req *Request) ([]*entity.Pitch, error) {
	start := time.Now()

	// 类型不在枚举内时收敛到固定标签值，避免把未校验输入带进指标维度
	pitchTypeLabel := req.PitchType
	if !entity.PitchType(req.PitchType).IsValid() {
		pitchTypeLabel = "invalid"
	}

	// 接口层已校验过一次，这里不信任调用方，重新校验
	draft := entity.Draft{
		StartupName: req.StartupName,
		Industry:    req.Industry,
		Problem:     req.Problem,
		Solution:    req.Solution,
		Audience:    req.Audience,
		PitchType:   req.PitchType,
	}
	if fieldErrs := draft.Validate(); len(fieldErrs) > 0 {
		metrics.PitchGenerationTotal.WithLabelValues(pitchTypeLabel, "validation_error").Inc()
		return nil, apperrors.New(apperrors.CodeValidationFailed, "validation failed").
			WithDetail(formatFieldErrors(fieldErrs))
	}

	prompt := BuildPrompt(req)

	chatModel, err := g.factory.Default(ctx)
	if err != nil {
		metrics.PitchGenerationTotal.WithLabelValues(pitchTypeLabel, "llm_error").Inc()
		return nil, apperrors.Wrap(err, apperrors.CodeLLMProviderError, "failed to initialize LLM provider")
	}

	outMsg, err := chatModel.Generate(ctx, []*schema.Message{schema.UserMessage(prompt)})
	if err != nil {
		metrics.PitchGenerationTotal.WithLabelValues(pitchTypeLabel, "llm_error").Inc()
		logger.Error(ctx, "llm generate failed", err,
			"startup_name", req.StartupName,
			"pitch_type", req.PitchType,
		)
		return nil, apperrors.Wrap(err, apperrors.CodeLLMCallFailed, "failed to generate pitches")
	}
	if outMsg == nil || outMsg.Content == "" {
		metrics.PitchGenerationTotal.WithLabelValues(pitchTypeLabel, "llm_error").Inc()
		return nil, apperrors.New(apperrors.CodeLLMCallFailed, "empty LLM response")
	}

	provider, model := g.factory.DefaultModelName()
	if outMsg.ResponseMeta != nil && outMsg.ResponseMeta.Usage != nil {
		metrics.LLMTokensUsed.WithLabelValues(provider, model, "prompt").
			Add(float64(outMsg.ResponseMeta.Usage.PromptTokens))
		metrics.LLMTokensUsed.WithLabelValues(provider, model, "completion").
			Add(float64(outMsg.ResponseMeta.Usage.CompletionTokens))
	}

	variants, usedFallback := ParseVariants(outMsg.Content)
	if usedFallback {
		metrics.PitchParseFallbackTotal.Inc()
		logger.Warn(ctx, "llm response not valid json, using fallback slicing",
			"provider", provider,
			"model", model,
			"content_length", len(outMsg.Content),
		)
	}

	pitches := make([]*entity.Pitch, 0, len(variants))
	for _, v := range variants {
		pitches = append(pitches, &entity.Pitch{
			OwnerID:     ownerID,
			StartupName: req.StartupName,
			Industry:    req.Industry,
			Problem:     req.Problem,
			Solution:    req.Solution,
			Audience:    req.Audience,
			PitchType:   entity.PitchType(req.PitchType),
			VariantKind: v.Kind,
			Text:        v.Text,
		})
	}

	if err := g.pitches.CreateBatch(ctx, pitches); err != nil {
		metrics.PitchGenerationTotal.WithLabelValues(pitchTypeLabel, "store_error").Inc()
		return nil, err
	}

	metrics.PitchGenerationTotal.WithLabelValues(pitchTypeLabel, "ok").Inc()
	metrics.PitchGenerationDuration.WithLabelValues(pitchTypeLabel).Observe(time.Since(start).Seconds())
	logger.Info(ctx, "pitches generated",
		"owner_id", ownerID,
		"startup_name", req.StartupName,
		"pitch_type", req.PitchType,
		"fallback", usedFallback,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return pitches, nil
}

// formatFieldErrors 将字段错误按字段名排序后拼接为可读文本
func formatFieldErrors(fieldErrs map[string]string) string {
	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+fieldErrs[field])
	}
	return strings.Join(parts, "; ")
}
