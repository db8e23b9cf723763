// Package entity 定义领域实体
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PitchType 路演稿类型
type PitchType string

const (
	PitchTypeElevator    PitchType = "elevator"
	PitchTypeInvestor    PitchType = "investor"
	PitchTypeCompetition PitchType = "competition"
)

// IsValid 检查路演稿类型是否在枚举范围内
func (t PitchType) IsValid() bool {
	switch t {
	case PitchTypeElevator, PitchTypeInvestor, PitchTypeCompetition:
		return true
	}
	return false
}

// VariantKind 生成变体的风格类别
type VariantKind string

const (
	VariantFormal       VariantKind = "formal"
	VariantStorytelling VariantKind = "storytelling"
	VariantDataDriven   VariantKind = "data-driven"
)

// AllVariantKinds 一次生成调用产出的固定变体集合，按固定顺序
var AllVariantKinds = []VariantKind{VariantFormal, VariantStorytelling, VariantDataDriven}

// Pitch 路演稿实体，一次生成请求产出三条，每种变体各一条
type Pitch struct {
	ID          string      `json:"id" gorm:"type:uuid;primaryKey"`
	OwnerID     string      `json:"owner_id" gorm:"type:uuid;index;not null"`
	StartupName string      `json:"startup_name" gorm:"type:varchar(255);not null"`
	Industry    string      `json:"industry" gorm:"type:varchar(100);index;not null"`
	Problem     string      `json:"problem,omitempty" gorm:"type:text"`
	Solution    string      `json:"solution,omitempty" gorm:"type:text"`
	Audience    string      `json:"audience,omitempty" gorm:"type:varchar(255)"`
	PitchType   PitchType   `json:"pitch_type" gorm:"type:varchar(50);index;not null"`
	VariantKind VariantKind `json:"variant_kind" gorm:"type:varchar(50);not null"`
	Text        string      `json:"text" gorm:"type:text"`
	CreatedAt   time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Pitch) TableName() string {
	return "pitches"
}

// BeforeCreate 在创建前生成 ID
func (p *Pitch) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
