package handler

import (
	"encoding/json"
	"time"

	"pitchcraft-ai-api/internal/domain/entity"
	"pitchcraft-ai-api/internal/domain/repository"
	"pitchcraft-ai-api/internal/infrastructure/persistence/redis"
	"pitchcraft-ai-api/internal/interfaces/http/dto"
	"pitchcraft-ai-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// industryCacheTTL 行业列表缓存时长，行业变更频率很低
const industryCacheTTL = 5 * time.Minute

// IndustryHandler 行业处理器
type IndustryHandler struct {
	industryRepo repository.IndustryRepository
	cache        *redis.Cache
}

// NewIndustryHandler 创建行业处理器
func NewIndustryHandler(industryRepo repository.IndustryRepository, cache *redis.Cache) *IndustryHandler {
	return &IndustryHandler{
		industryRepo: industryRepo,
		cache:        cache,
	}
}

// List 查询当前用户可见的行业（系统默认 + 自建）
func (h *IndustryHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")

	bytes, err := h.cache.GetOrLoad(ctx, "industries:"+userID, industryCacheTTL, func() (interface{}, error) {
		industries, err := h.industryRepo.ListVisible(ctx, userID)
		if err != nil {
			return nil, err
		}
		return dto.ToIndustryDTOs(industries), nil
	})
	if err != nil {
		logger.Error(ctx, "failed to list industries", err, "user_id", userID)
		dto.InternalError(c, "failed to list industries")
		return
	}

	var industries []*dto.IndustryDTO
	if err := json.Unmarshal(bytes, &industries); err != nil {
		logger.Error(ctx, "failed to decode cached industries", err)
		dto.InternalError(c, "failed to list industries")
		return
	}

	dto.Success(c, industries)
}

// Create 新建自定义行业，名称全局唯一
func (h *IndustryHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")

	var req dto.CreateIndustryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	industry := &entity.Industry{
		Name:    req.Name,
		OwnerID: &userID,
	}
	if err := h.industryRepo.Create(ctx, industry); err != nil {
		dto.FromAppError(c, err)
		return
	}

	// 名称全局唯一，任何用户的可见列表都可能变化
	if err := h.cache.InvalidateIndustries(ctx); err != nil {
		logger.Warn(ctx, "failed to invalidate industry cache", "error", err)
	}

	dto.Created(c, dto.ToIndustryDTO(industry))
}
