package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ModePractice = "practice"
	ModeExam     = "exam"
)

// Attempt is one exam or practice sitting by one user. A non-nil
// SubmittedAt seals the attempt: Score is authoritative from that point on
// and every mutating operation is rejected.
type Attempt struct {
	ID               string          `gorm:"type:uuid;primarykey" json:"id"`
	UserID           uint            `json:"user_id" gorm:"not null;index"`
	TopicID          *uint           `json:"topic_id,omitempty" gorm:"index"` // practice mode only
	Mode             string          `json:"mode" gorm:"not null;index;default:'practice'"`
	Title            *string         `json:"title,omitempty"`
	Score            int             `json:"score" gorm:"not null;default:0"`
	StartedAt        time.Time       `json:"started_at" gorm:"not null"`
	SubmittedAt      *time.Time      `json:"submitted_at,omitempty"`
	DurationSeconds  *int            `json:"duration_seconds,omitempty"`
	TimeLimitSeconds *int            `json:"time_limit_seconds,omitempty"`
	Answers          []AttemptAnswer `json:"answers,omitempty" gorm:"foreignKey:AttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (a *Attempt) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

func (a *Attempt) Sealed() bool {
	return a.SubmittedAt != nil
}
