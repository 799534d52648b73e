package model

import (
	"time"

	"gorm.io/gorm"
)

type Unit struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `json:"name" gorm:"not null;uniqueIndex"` // "Competencia Lectora"
	Topics    []Topic        `json:"topics,omitempty" gorm:"foreignKey:UnitID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
