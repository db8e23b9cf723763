package dto

import (
	"time"

	"pitchcraft-ai-api/internal/domain/entity"
)

// previewLength 列表展示用的正文截断长度
const previewLength = 100

// GeneratePitchRequest 生成请求
type GeneratePitchRequest struct {
	StartupName string `json:"startup_name"`
	Industry    string `json:"industry"`
	Problem     string `json:"problem"`
	Solution    string `json:"solution"`
	Audience    string `json:"audience"`
	PitchType   string `json:"pitch_type"`
}

// UpdatePitchRequest 正文编辑请求
type UpdatePitchRequest struct {
	Text string `json:"text" binding:"required"`
}

// FeedbackRequest 反馈请求
type FeedbackRequest struct {
	PitchID string `json:"pitch_id" binding:"required"`
	Text    string `json:"text" binding:"required"`
}

// PitchDTO 路演稿响应
type PitchDTO struct {
	ID          string    `json:"id"`
	StartupName string    `json:"startup_name"`
	Industry    string    `json:"industry"`
	Problem     string    `json:"problem,omitempty"`
	Solution    string    `json:"solution,omitempty"`
	Audience    string    `json:"audience,omitempty"`
	PitchType   string    `json:"pitch_type"`
	VariantKind string    `json:"variant_kind"`
	Text        string    `json:"text"`
	Preview     string    `json:"preview"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FeedbackDTO 反馈响应
type FeedbackDTO struct {
	ID        string    `json:"id"`
	PitchID   string    `json:"pitch_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ToPitchDTO 路演稿实体转 DTO
func ToPitchDTO(p *entity.Pitch) *PitchDTO {
	return &PitchDTO{
		ID:          p.ID,
		StartupName: p.StartupName,
		Industry:    p.Industry,
		Problem:     p.Problem,
		Solution:    p.Solution,
		Audience:    p.Audience,
		PitchType:   string(p.PitchType),
		VariantKind: string(p.VariantKind),
		Text:        p.Text,
		Preview:     previewText(p.Text),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToPitchDTOs 批量转换
func ToPitchDTOs(pitches []*entity.Pitch) []*PitchDTO {
	dtos := make([]*PitchDTO, 0, len(pitches))
	for _, p := range pitches {
		dtos = append(dtos, ToPitchDTO(p))
	}
	return dtos
}

// ToFeedbackDTO 反馈实体转 DTO
func ToFeedbackDTO(f *entity.Feedback) *FeedbackDTO {
	return &FeedbackDTO{
		ID:        f.ID,
		PitchID:   f.PitchID,
		Text:      f.Text,
		CreatedAt: f.CreatedAt,
	}
}

// previewText 截断正文用于列表展示，超长时追加省略号
func previewText(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLength {
		return text
	}
	return string(runes[:previewLength]) + "..."
}
