package dto

import (
	"time"

	"pitchcraft-ai-api/internal/domain/entity"
)

// SaveDraftRequest 草稿保存请求，允许不完整
type SaveDraftRequest struct {
	StartupName string `json:"startup_name"`
	Industry    string `json:"industry"`
	Problem     string `json:"problem"`
	Solution    string `json:"solution"`
	Audience    string `json:"audience"`
	PitchType   string `json:"pitch_type"`
}

// DraftDTO 草稿响应
type DraftDTO struct {
	StartupName string    `json:"startup_name"`
	Industry    string    `json:"industry"`
	Problem     string    `json:"problem"`
	Solution    string    `json:"solution"`
	Audience    string    `json:"audience"`
	PitchType   string    `json:"pitch_type"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SpinResponse 行业转盘结果
type SpinResponse struct {
	Industry string `json:"industry"`
}

// ToDraftEntity 草稿请求转实体
func (r *SaveDraftRequest) ToDraftEntity() *entity.Draft {
	return &entity.Draft{
		StartupName: r.StartupName,
		Industry:    r.Industry,
		Problem:     r.Problem,
		Solution:    r.Solution,
		Audience:    r.Audience,
		PitchType:   r.PitchType,
	}
}

// ToDraftDTO 草稿实体转 DTO
func ToDraftDTO(d *entity.Draft) *DraftDTO {
	return &DraftDTO{
		StartupName: d.StartupName,
		Industry:    d.Industry,
		Problem:     d.Problem,
		Solution:    d.Solution,
		Audience:    d.Audience,
		PitchType:   d.PitchType,
		UpdatedAt:   d.UpdatedAt,
	}
}
