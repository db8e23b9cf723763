// Package entity 定义领域实体
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Industry 行业类别，OwnerID 为空表示系统默认、对所有用户可见；创建后不可变更
type Industry struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	OwnerID   *string   `json:"owner_id,omitempty" gorm:"type:uuid;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName 指定表名
func (Industry) TableName() string {
	return "industries"
}

// BeforeCreate 在创建前生成 ID
func (i *Industry) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// IsDefault 是否为系统默认行业
func (i *Industry) IsDefault() bool {
	return i.OwnerID == nil
}

// DefaultIndustries 系统默认行业，与行业转盘的灵感列表一致
var DefaultIndustries = []string{
	"Fintech",
	"Healthtech",
	"Edtech",
	"Agritech",
	"AI",
	"Biotech",
	"Greentech",
	"E-commerce",
}
