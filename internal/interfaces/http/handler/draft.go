package handler

import (
	"pitchcraft-ai-api/internal/application/draft"
	"pitchcraft-ai-api/internal/domain/entity"
	"pitchcraft-ai-api/internal/interfaces/http/dto"
	"pitchcraft-ai-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// DraftHandler 表单草稿处理器
type DraftHandler struct {
	drafts *draft.Service
	wheel  *draft.Wheel
}

// NewDraftHandler 创建草稿处理器
func NewDraftHandler(drafts *draft.Service, wheel *draft.Wheel) *DraftHandler {
	return &DraftHandler{
		drafts: drafts,
		wheel:  wheel,
	}
}

// Get 读取当前用户的草稿
func (h *DraftHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")

	d, err := h.drafts.Get(ctx, userID)
	if err != nil {
		logger.Error(ctx, "failed to get draft", err, "user_id", userID)
		dto.InternalError(c, "failed to get draft")
		return
	}
	if d == nil {
		// 无快照时返回空草稿，类型预置默认值，客户端直接渲染表单
		d = &entity.Draft{PitchType: draft.DefaultPitchType}
	}

	dto.Success(c, dto.ToDraftDTO(d))
}

// Save 覆盖保存草稿，允许不完整的表单
func (h *DraftHandler) Save(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")

	var req dto.SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	d, err := h.drafts.Save(ctx, userID, req.ToDraftEntity())
	if err != nil {
		logger.Error(ctx, "failed to save draft", err, "user_id", userID)
		dto.InternalError(c, "failed to save draft")
		return
	}

	dto.Success(c, dto.ToDraftDTO(d))
}

// Delete 删除草稿，幂等
func (h *DraftHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")

	if err := h.drafts.Clear(ctx, userID); err != nil {
		logger.Error(ctx, "failed to clear draft", err, "user_id", userID)
		dto.InternalError(c, "failed to clear draft")
		return
	}

	dto.NoContent(c)
}

// Validate 校验草稿是否满足生成条件，返回字段错误映射
func (h *DraftHandler) Validate(c *gin.Context) {
	var req dto.SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	fieldErrs := h.drafts.Validate(req.ToDraftEntity())
	if len(fieldErrs) > 0 {
		dto.ValidationError(c, fieldErrs)
		return
	}

	dto.Success(c, gin.H{"valid": true})
}

// Spin 行业转盘，等待固定时长后随机选取行业并写入草稿
func (h *DraftHandler) Spin(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")

	industry, err := h.wheel.Spin(ctx, nil)
	if err != nil {
		// 等待期间客户端断开
		dto.InternalError(c, "spin interrupted")
		return
	}

	// 选中结果落到草稿上，与手动填写同一条路径
	d, err := h.drafts.Get(ctx, userID)
	if err != nil {
		logger.Error(ctx, "failed to get draft for spin", err, "user_id", userID)
		dto.InternalError(c, "failed to apply spin result")
		return
	}
	if d == nil {
		d = &entity.Draft{}
	}
	d.Industry = industry

	if _, err := h.drafts.Save(ctx, userID, d); err != nil {
		logger.Error(ctx, "failed to save draft after spin", err, "user_id", userID)
		dto.InternalError(c, "failed to apply spin result")
		return
	}

	dto.Success(c, &dto.SpinResponse{Industry: industry})
}
