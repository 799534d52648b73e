package model

import (
	"time"
)

// Correctness is the evaluated state of one answer row. The column behind
// it is a nullable boolean; keeping the three-valued logic behind this type
// stops NULL handling from leaking into score aggregation.
type Correctness int

const (
	Unanswered Correctness = iota
	Correct
	Incorrect
)

// AttemptAnswer is the per-question row of an attempt. One row per
// (attempt, question) pair is created at session start with no selection;
// only OptionID and IsCorrect mutate afterwards.
type AttemptAnswer struct {
	AttemptID  string    `json:"attempt_id" gorm:"type:uuid;primaryKey"`
	QuestionID uint      `json:"question_id" gorm:"primaryKey"`
	Question   Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	OptionID   *uint     `json:"option_id,omitempty"`
	IsCorrect  *bool     `json:"is_correct,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (a *AttemptAnswer) Correctness() Correctness {
	switch {
	case a.IsCorrect == nil:
		return Unanswered
	case *a.IsCorrect:
		return Correct
	default:
		return Incorrect
	}
}
