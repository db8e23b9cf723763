// Package entity 定义领域实体
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback 路演稿反馈，仅追加，不聚合不评分
type Feedback struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	PitchID   string    `json:"pitch_id" gorm:"type:uuid;index;not null"`
	OwnerID   string    `json:"owner_id" gorm:"type:uuid;index;not null"`
	Text      string    `json:"text" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName 指定表名
func (Feedback) TableName() string {
	return "feedbacks"
}

// BeforeCreate 在创建前生成 ID
func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
