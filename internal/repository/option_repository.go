package repository

import (
	"github.com/paeslab/ensayo-api/internal/model"
	"gorm.io/gorm"
)

type OptionRepository interface {
	FindForQuestion(optionID, questionID uint) (*model.Option, error)
	CorrectnessByIDs(optionIDs []uint) (map[uint]bool, error)
}

type optionRepository struct {
	db *gorm.DB
}

func NewOptionRepository(db *gorm.DB) OptionRepository {
	return &optionRepository{db: db}
}

// FindForQuestion resolves an option scoped to its question. An option id
// that belongs to a different question comes back as ErrRecordNotFound; the
// caller decides what that means.
func (r *optionRepository) FindForQuestion(optionID, questionID uint) (*model.Option, error) {
	var option model.Option
	err := r.db.
		Where("id = ? AND question_id = ?", optionID, questionID).
		First(&option).Error
	if err != nil {
		return nil, err
	}
	return &option, nil
}

func (r *optionRepository) CorrectnessByIDs(optionIDs []uint) (map[uint]bool, error) {
	correctness := make(map[uint]bool, len(optionIDs))
	if len(optionIDs) == 0 {
		return correctness, nil
	}
	var options []model.Option
	if err := r.db.Select("id", "is_correct").Where("id IN ?", optionIDs).Find(&options).Error; err != nil {
		return nil, err
	}
	for _, o := range options {
		correctness[o.ID] = o.IsCorrect
	}
	return correctness, nil
}
