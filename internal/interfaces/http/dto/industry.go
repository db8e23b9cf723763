package dto

import (
	"time"

	"pitchcraft-ai-api/internal/domain/entity"
)

// CreateIndustryRequest 新建行业请求
type CreateIndustryRequest struct {
	Name string `json:"name" binding:"required"`
}

// IndustryDTO 行业响应
type IndustryDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}

// ToIndustryDTO 行业实体转 DTO
func ToIndustryDTO(i *entity.Industry) *IndustryDTO {
	return &IndustryDTO{
		ID:        i.ID,
		Name:      i.Name,
		IsDefault: i.IsDefault(),
		CreatedAt: i.CreatedAt,
	}
}

// ToIndustryDTOs 批量转换
func ToIndustryDTOs(industries []*entity.Industry) []*IndustryDTO {
	dtos := make([]*IndustryDTO, 0, len(industries))
	for _, i := range industries {
		dtos = append(dtos, ToIndustryDTO(i))
	}
	return dtos
}
