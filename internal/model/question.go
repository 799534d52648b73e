package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	TopicID     uint           `json:"topic_id" gorm:"not null;index"`
	Topic       Topic          `json:"topic,omitempty" gorm:"foreignKey:TopicID"`
	Stem        string         `json:"stem" gorm:"type:text;not null"`
	Difficulty  string         `json:"difficulty,omitempty"` // "easy", "medium", "hard"
	Explanation string         `json:"explanation,omitempty" gorm:"type:text"`
	Options     []Option       `json:"options,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
