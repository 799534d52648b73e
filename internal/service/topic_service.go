package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/paeslab/ensayo-api/internal/dto"
	"github.com/paeslab/ensayo-api/internal/repository"
	"github.com/rs/zerolog/log"
)

// TopicService projects the question catalog for clients: the topic picker
// on the exam setup page and the question list of the practice runner.
type TopicService interface {
	ListTopics() (*dto.TopicListDTO, error)
	QuestionsByTopic(topicID uint) ([]dto.TopicQuestionDTO, error)
}

type topicService struct {
	topicRepo    repository.TopicRepository
	questionRepo repository.QuestionRepository
}

func NewTopicService(topicRepo repository.TopicRepository, questionRepo repository.QuestionRepository) TopicService {
	return &topicService{topicRepo: topicRepo, questionRepo: questionRepo}
}

func (s *topicService) ListTopics() (*dto.TopicListDTO, error) {
	rows, err := s.topicRepo.FindAllWithUnits()
	if err != nil {
		log.Error().Err(err).Msg("ListTopics: repository error")
		return nil, fmt.Errorf("loading topics: %w", err)
	}

	topics := make([]dto.TopicSummaryDTO, 0, len(rows))
	for _, row := range rows {
		topics = append(topics, dto.TopicSummaryDTO{
			ID:       row.ID,
			Name:     row.Name,
			UnitID:   row.UnitID,
			UnitName: row.UnitName,
		})
	}
	return &dto.TopicListDTO{OK: true, Topics: topics}, nil
}

func (s *topicService) QuestionsByTopic(topicID uint) ([]dto.TopicQuestionDTO, error) {
	questions, err := s.questionRepo.FindByTopicWithOptions(topicID)
	if err != nil {
		log.Error().Err(err).Uint("topicID", topicID).Msg("QuestionsByTopic: repository error")
		return nil, fmt.Errorf("loading questions of topic %d: %w", topicID, err)
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestionsAvailable
	}

	var dtos []dto.TopicQuestionDTO
	if err := copier.Copy(&dtos, &questions); err != nil {
		log.Error().Err(err).Uint("topicID", topicID).Msg("QuestionsByTopic: failed to copy questions")
		return nil, fmt.Errorf("preparing questions of topic %d: %w", topicID, err)
	}
	return dtos, nil
}
