package dto

import "time"

// PracticeAnswerDTO is one answered question inside a practice submission.
type PracticeAnswerDTO struct {
	QuestionID uint  `json:"question_id" binding:"required"`
	OptionID   *uint `json:"option_id"`
}

// PracticeSubmitDTO submits an entire practice round in one call; the
// attempt is created already sealed.
type PracticeSubmitDTO struct {
	TopicID uint                `json:"topic_id" binding:"required"`
	Answers []PracticeAnswerDTO `json:"answers" binding:"required,dive"`
}

type PracticeResultDTO struct {
	OK          bool    `json:"ok"`
	AttemptID   string  `json:"attempt_id"`
	Score       int     `json:"score"`
	Total       int     `json:"total"`
	AccuracyPct float64 `json:"accuracy_pct"`
}

type PracticeHistoryItemDTO struct {
	AttemptID   string    `json:"attempt_id"`
	TopicName   string    `json:"topic_name"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	AccuracyPct float64   `json:"accuracy_pct"`
	StartedAt   time.Time `json:"started_at"`
}

type PracticeHistoryDTO struct {
	OK       bool                     `json:"ok"`
	Attempts []PracticeHistoryItemDTO `json:"attempts"`
}
