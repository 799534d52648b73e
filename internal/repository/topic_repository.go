package repository

import (
	"github.com/paeslab/ensayo-api/internal/model"
	"gorm.io/gorm"
)

type TopicWithUnit struct {
	model.Topic
	UnitName string
}

type TopicRepository interface {
	FindAllWithUnits() ([]TopicWithUnit, error)
	FindByID(id uint) (*model.Topic, error)
}

type topicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) FindAllWithUnits() ([]TopicWithUnit, error) {
	var rows []TopicWithUnit
	err := r.db.Model(&model.Topic{}).
		Select("topics.*, units.name AS unit_name").
		Joins("LEFT JOIN units ON units.id = topics.unit_id").
		Where("topics.deleted_at IS NULL").
		Order("units.name ASC, topics.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *topicRepository) FindByID(id uint) (*model.Topic, error) {
	var topic model.Topic
	if err := r.db.First(&topic, id).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}
