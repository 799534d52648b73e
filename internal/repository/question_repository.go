package repository

import (
	"github.com/paeslab/ensayo-api/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindIDsByTopic(topicID uint) ([]uint, error)
	FindByIDs(ids []uint) ([]model.Question, error)
	FindByIDsWithOptions(ids []uint) ([]model.Question, error)
	FindByTopicWithOptions(topicID uint) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// FindIDsByTopic returns the eligible question ids of a topic. Sampling
// happens in the service layer over these ids instead of ORDER BY RANDOM(),
// which keeps the RNG injectable and avoids a full-table sort.
func (r *questionRepository) FindIDsByTopic(topicID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.Question{}).
		Where("topic_id = ?", topicID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *questionRepository) FindByIDs(ids []uint) ([]model.Question, error) {
	var questions []model.Question
	if len(ids) == 0 {
		return questions, nil
	}
	err := r.db.Where("id IN ?", ids).Order("id ASC").Find(&questions).Error
	return questions, err
}

func (r *questionRepository) FindByIDsWithOptions(ids []uint) ([]model.Question, error) {
	var questions []model.Question
	if len(ids) == 0 {
		return questions, nil
	}
	err := r.db.
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.label ASC")
		}).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&questions).Error
	return questions, err
}

func (r *questionRepository) FindByTopicWithOptions(topicID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.label ASC")
		}).
		Where("topic_id = ?", topicID).
		Order("id ASC").
		Find(&questions).Error
	return questions, err
}
