package repository

import (
	"github.com/paeslab/ensayo-api/internal/model"
	"gorm.io/gorm"
)

// TopicCount is how many of an attempt's questions belong to one topic.
type TopicCount struct {
	TopicID uint
	Count   int
}

type AttemptAnswerRepository interface {
	FindByAttempt(attemptID string) ([]model.AttemptAnswer, error)
	FindByAttemptWithQuestions(attemptID string) ([]model.AttemptAnswer, error)
	Exists(attemptID string, questionID uint) (bool, error)
	UpdateSelection(attemptID string, questionID uint, optionID *uint, isCorrect *bool) error
	Count(attemptID string) (int64, error)
	CountCorrect(attemptID string) (int64, error)
	TopicComposition(attemptID string) ([]TopicCount, error)
}

type attemptAnswerRepository struct {
	db *gorm.DB
}

func NewAttemptAnswerRepository(db *gorm.DB) AttemptAnswerRepository {
	return &attemptAnswerRepository{db: db}
}

func (r *attemptAnswerRepository) FindByAttempt(attemptID string) ([]model.AttemptAnswer, error) {
	var answers []model.AttemptAnswer
	err := r.db.
		Where("attempt_id = ?", attemptID).
		Order("question_id ASC").
		Find(&answers).Error
	return answers, err
}

func (r *attemptAnswerRepository) FindByAttemptWithQuestions(attemptID string) ([]model.AttemptAnswer, error) {
	var answers []model.AttemptAnswer
	err := r.db.
		Preload("Question").
		Where("attempt_id = ?", attemptID).
		Order("question_id ASC").
		Find(&answers).Error
	return answers, err
}

func (r *attemptAnswerRepository) Exists(attemptID string, questionID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.AttemptAnswer{}).
		Where("attempt_id = ? AND question_id = ?", attemptID, questionID).
		Count(&count).Error
	return count > 0, err
}

// UpdateSelection overwrites the row unconditionally; two concurrent writes
// for the same question race with last-write-wins semantics.
func (r *attemptAnswerRepository) UpdateSelection(attemptID string, questionID uint, optionID *uint, isCorrect *bool) error {
	return r.db.Model(&model.AttemptAnswer{}).
		Where("attempt_id = ? AND question_id = ?", attemptID, questionID).
		Updates(map[string]interface{}{
			"option_id":  optionID,
			"is_correct": isCorrect,
		}).Error
}

func (r *attemptAnswerRepository) Count(attemptID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.AttemptAnswer{}).
		Where("attempt_id = ?", attemptID).
		Count(&count).Error
	return count, err
}

func (r *attemptAnswerRepository) CountCorrect(attemptID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.AttemptAnswer{}).
		Where("attempt_id = ? AND is_correct = ?", attemptID, true).
		Count(&count).Error
	return count, err
}

func (r *attemptAnswerRepository) TopicComposition(attemptID string) ([]TopicCount, error) {
	var rows []TopicCount
	err := r.db.Model(&model.AttemptAnswer{}).
		Select("questions.topic_id AS topic_id, COUNT(*) AS count").
		Joins("JOIN questions ON questions.id = attempt_answers.question_id").
		Where("attempt_answers.attempt_id = ?", attemptID).
		Group("questions.topic_id").
		Scan(&rows).Error
	return rows, err
}
