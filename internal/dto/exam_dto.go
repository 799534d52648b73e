package dto

import "time"

// SectionDTO is one (topic, count) request in an exam composition.
type SectionDTO struct {
	TopicID uint `json:"topic_id" binding:"required"`
	Count   int  `json:"count" binding:"required,min=1"`
}

// ExamStartDTO is the request body for starting a new timed exam.
type ExamStartDTO struct {
	Title            *string      `json:"title"`
	TimeLimitSeconds *int         `json:"time_limit_seconds" binding:"omitempty,min=1"`
	Sections         []SectionDTO `json:"sections" binding:"required,min=1,dive"`
}

// ExamStartedDTO is returned for both a fresh start and a retake.
type ExamStartedDTO struct {
	OK               bool   `json:"ok"`
	AttemptID        string `json:"attempt_id"`
	Title            string `json:"title"`
	TimeLimitSeconds *int   `json:"time_limit_seconds"`
	TotalQuestions   int    `json:"total_questions"`
}

// ExamAnswerDTO records one selection. A nil OptionID clears the answer.
type ExamAnswerDTO struct {
	QuestionID uint  `json:"question_id" binding:"required"`
	OptionID   *uint `json:"option_id"`
}

type ExamAnswerAcceptedDTO struct {
	OK         bool  `json:"ok"`
	QuestionID uint  `json:"question_id"`
	OptionID   *uint `json:"option_id"`
}

// ExamFinishDTO optionally carries the client-measured duration.
type ExamFinishDTO struct {
	DurationSeconds *int `json:"duration_seconds" binding:"omitempty,min=0"`
}

type ExamFinishedDTO struct {
	OK          bool    `json:"ok"`
	AttemptID   string  `json:"attempt_id"`
	Score       int     `json:"score"`
	Total       int     `json:"total"`
	AccuracyPct float64 `json:"accuracy_pct"`
}

// --- Progress (countdown view, answer key withheld) ---

type AttemptMetaDTO struct {
	ID               string     `json:"id"`
	Title            *string    `json:"title"`
	TimeLimitSeconds *int       `json:"time_limit_seconds"`
	StartedAt        time.Time  `json:"started_at"`
	SubmittedAt      *time.Time `json:"submitted_at"`
}

type ProgressOptionDTO struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
	Text  string `json:"text"`
}

type ProgressItemDTO struct {
	QuestionID       uint                `json:"question_id"`
	Stem             string              `json:"stem"`
	Options          []ProgressOptionDTO `json:"options"`
	SelectedOptionID *uint               `json:"selected_option_id"`
}

type ExamProgressDTO struct {
	OK             bool              `json:"ok"`
	Attempt        AttemptMetaDTO    `json:"attempt"`
	Items          []ProgressItemDTO `json:"items"`
	Answered       int               `json:"answered"`
	Total          int               `json:"total"`
	ServerNow      time.Time         `json:"server_now"`
	ElapsedSeconds int               `json:"elapsed_seconds"`
	Expired        bool              `json:"expired"`
}

// --- Result / detail (review view, full answer key) ---

type ReviewOptionDTO struct {
	ID         uint   `json:"id"`
	Label      string `json:"label"`
	Text       string `json:"text"`
	IsCorrect  bool   `json:"is_correct"`
	IsSelected bool   `json:"is_selected"`
}

type ReviewItemDTO struct {
	QuestionID       uint              `json:"question_id"`
	Stem             string            `json:"stem"`
	Explanation      string            `json:"explanation"`
	SelectedOptionID *uint             `json:"selected_option_id"`
	IsCorrect        *bool             `json:"is_correct"`
	Options          []ReviewOptionDTO `json:"options"`
}

type ExamResultMetaDTO struct {
	ID               string     `json:"id"`
	Title            *string    `json:"title"`
	Score            int        `json:"score"`
	StartedAt        time.Time  `json:"started_at"`
	SubmittedAt      *time.Time `json:"submitted_at"`
	DurationSeconds  *int       `json:"duration_seconds,omitempty"`
	TimeLimitSeconds *int       `json:"time_limit_seconds"`
	Total            int        `json:"total"`
	AccuracyPct      float64    `json:"accuracy_pct"`
}

type ExamReviewDTO struct {
	OK      bool              `json:"ok"`
	Attempt ExamResultMetaDTO `json:"attempt"`
	Items   []ReviewItemDTO   `json:"items"`
}

// --- Active / history listings ---

type ActiveExamDTO struct {
	ID               string    `json:"id"`
	Title            *string   `json:"title"`
	StartedAt        time.Time `json:"started_at"`
	TimeLimitSeconds *int      `json:"time_limit_seconds"`
}

type ActiveExamsDTO struct {
	OK     bool            `json:"ok"`
	Active []ActiveExamDTO `json:"active"`
}

type ExamHistoryItemDTO struct {
	AttemptID        string     `json:"attempt_id"`
	Title            *string    `json:"title"`
	Score            int        `json:"score"`
	StartedAt        time.Time  `json:"started_at"`
	SubmittedAt      *time.Time `json:"submitted_at"`
	DurationSeconds  *int       `json:"duration_seconds,omitempty"`
	TimeLimitSeconds *int       `json:"time_limit_seconds"`
	TotalQuestions   int        `json:"total_questions"`
	AccuracyPct      float64    `json:"accuracy_pct"`
}

type ExamHistoryDTO struct {
	OK         bool                 `json:"ok"`
	Exams      []ExamHistoryItemDTO `json:"exams"`
	TotalExams int64                `json:"total_exams"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	HasMore    bool                 `json:"has_more"`
}
