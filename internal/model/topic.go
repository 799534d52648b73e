package model

import (
	"time"

	"gorm.io/gorm"
)

type Topic struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UnitID    uint           `json:"unit_id" gorm:"not null;index"`
	Unit      Unit           `json:"unit,omitempty" gorm:"foreignKey:UnitID"`
	Name      string         `json:"name" gorm:"not null"`
	Questions []Question     `json:"questions,omitempty" gorm:"foreignKey:TopicID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
