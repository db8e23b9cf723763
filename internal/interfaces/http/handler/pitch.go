package handler

import (
	"pitchcraft-ai-api/internal/application/draft"
	"pitchcraft-ai-api/internal/application/generation"
	"pitchcraft-ai-api/internal/domain/entity"
	"pitchcraft-ai-api/internal/domain/repository"
	"pitchcraft-ai-api/internal/interfaces/http/dto"
	"pitchcraft-ai-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// PitchHandler 路演稿处理器
type PitchHandler struct {
	gateway      *generation.Gateway
	pitchRepo    repository.PitchRepository
	feedbackRepo repository.FeedbackRepository
	drafts       *draft.Service
}

// NewPitchHandler 创建路演稿处理器
func NewPitchHandler(
	gateway *generation.Gateway,
	pitchRepo repository.PitchRepository,
	feedbackRepo repository.FeedbackRepository,
	drafts *draft.Service,
) *PitchHandler {
	return &PitchHandler{
		gateway:      gateway,
		pitchRepo:    pitchRepo,
		feedbackRepo: feedbackRepo,
		drafts:       drafts,
	}
}

// Generate 生成路演稿
// @Summary 根据表单生成三个风格变体并保存
// @Tags Pitch
// @Accept json
// @Produce json
// @Param body body dto.GeneratePitchRequest true "表单内容"
// @Success 200 {object} dto.Response[[]dto.PitchDTO]
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/pitches/generate [post]
func (h *PitchHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")

	var req dto.GeneratePitchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	// 先做字段级校验，字段错误以映射形式返回给表单渲染
	form := entity.Draft{
		StartupName: req.StartupName,
		Industry:    req.Industry,
		Problem:     req.Problem,
		Solution:    req.Solution,
		Audience:    req.Audience,
		PitchType:   req.PitchType,
	}
	if fieldErrs := form.Validate(); len(fieldErrs) > 0 {
		dto.ValidationError(c, fieldErrs)
		return
	}

	pitches, err := h.gateway.Generate(ctx, userID, &generation.Request{
		StartupName: req.StartupName,
		Industry:    req.Industry,
		Problem:     req.Problem,
		Solution:    req.Solution,
		Audience:    req.Audience,
		PitchType:   req.PitchType,
	})
	if err != nil {
		dto.FromAppError(c, err)
		return
	}

	// 生成成功后清理草稿，失败不影响响应
	if err := h.drafts.Clear(ctx, userID); err != nil {
		logger.Warn(ctx, "failed to clear draft after generation", "error", err, "user_id", userID)
	}

	dto.Success(c, dto.ToPitchDTOs(pitches))
}

// List 查询当前用户的路演稿
// @Summary 按可选的行业和类型过滤查询，按创建时间降序
// @Tags Pitch
// @Produce json
// @Param industry query string false "行业过滤"
// @Param pitch_type query string false "类型过滤"
// @Success 200 {object} dto.Response[[]dto.PitchDTO]
// @Router /v1/pitches [get]
func (h *PitchHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")

	filter := repository.PitchFilter{
		Industry:  c.Query("industry"),
		PitchType: c.Query("pitch_type"),
	}

	pitches, err := h.pitchRepo.ListByOwner(ctx, userID, filter)
	if err != nil {
		logger.Error(ctx, "failed to list pitches", err, "user_id", userID)
		dto.InternalError(c, "failed to list pitches")
		return
	}

	dto.Success(c, dto.ToPitchDTOs(pitches))
}

// Update 编辑路演稿正文
func (h *PitchHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")
	pitchID := c.Param("id")

	var req dto.UpdatePitchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	pitch, err := h.pitchRepo.UpdateText(ctx, userID, pitchID, req.Text)
	if err != nil {
		dto.FromAppError(c, err)
		return
	}

	dto.Success(c, dto.ToPitchDTO(pitch))
}

// CreateFeedback 追加反馈
func (h *PitchHandler) CreateFeedback(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")

	var req dto.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	// 跨属主与不存在同样返回 404
	pitch, err := h.pitchRepo.GetByIDForOwner(ctx, userID, req.PitchID)
	if err != nil {
		logger.Error(ctx, "failed to get pitch for feedback", err, "pitch_id", req.PitchID)
		dto.InternalError(c, "failed to create feedback")
		return
	}
	if pitch == nil {
		dto.NotFound(c, "pitch not found")
		return
	}

	feedback := &entity.Feedback{
		PitchID: pitch.ID,
		OwnerID: userID,
		Text:    req.Text,
	}
	if err := h.feedbackRepo.Create(ctx, feedback); err != nil {
		logger.Error(ctx, "failed to create feedback", err, "pitch_id", pitch.ID)
		dto.InternalError(c, "failed to create feedback")
		return
	}

	dto.Created(c, dto.ToFeedbackDTO(feedback))
}

// ListFeedback 查询某条路演稿的反馈
func (h *PitchHandler) ListFeedback(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")
	pitchID := c.Param("id")

	pitch, err := h.pitchRepo.GetByIDForOwner(ctx, userID, pitchID)
	if err != nil {
		logger.Error(ctx, "failed to get pitch", err, "pitch_id", pitchID)
		dto.InternalError(c, "failed to list feedback")
		return
	}
	if pitch == nil {
		dto.NotFound(c, "pitch not found")
		return
	}

	feedbacks, err := h.feedbackRepo.ListByPitch(ctx, pitch.ID)
	if err != nil {
		logger.Error(ctx, "failed to list feedback", err, "pitch_id", pitch.ID)
		dto.InternalError(c, "failed to list feedback")
		return
	}

	dtos := make([]*dto.FeedbackDTO, 0, len(feedbacks))
	for _, f := range feedbacks {
		dtos = append(dtos, dto.ToFeedbackDTO(f))
	}
	dto.Success(c, dtos)
}
