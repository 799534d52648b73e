package service

import (
	"fmt"

	"github.com/paeslab/ensayo-api/internal/dto"
	"github.com/paeslab/ensayo-api/internal/model"
	"github.com/paeslab/ensayo-api/internal/repository"
	"github.com/rs/zerolog/log"
)

// PracticeService handles the untimed per-topic flow: the client grades
// locally while answering and submits the whole round in one call, so the
// attempt is created already sealed.
type PracticeService interface {
	Submit(userID uint, req dto.PracticeSubmitDTO) (*dto.PracticeResultDTO, error)
	History(userID uint) (*dto.PracticeHistoryDTO, error)
}

type practiceService struct {
	attemptRepo repository.AttemptRepository
	optionRepo  repository.OptionRepository
	topicRepo   repository.TopicRepository
}

func NewPracticeService(
	attemptRepo repository.AttemptRepository,
	optionRepo repository.OptionRepository,
	topicRepo repository.TopicRepository,
) PracticeService {
	return &practiceService{
		attemptRepo: attemptRepo,
		optionRepo:  optionRepo,
		topicRepo:   topicRepo,
	}
}

func (s *practiceService) Submit(userID uint, req dto.PracticeSubmitDTO) (*dto.PracticeResultDTO, error) {
	optionIDs := make([]uint, 0, len(req.Answers))
	for _, a := range req.Answers {
		if a.OptionID != nil {
			optionIDs = append(optionIDs, *a.OptionID)
		}
	}

	correctness, err := s.optionRepo.CorrectnessByIDs(optionIDs)
	if err != nil {
		log.Error().Err(err).Uint("topicID", req.TopicID).Msg("Submit practice: correctness lookup failed")
		return nil, fmt.Errorf("resolving option correctness: %w", err)
	}

	score := 0
	answers := make([]model.AttemptAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		var isCorrect *bool
		if a.OptionID != nil {
			correct := correctness[*a.OptionID]
			isCorrect = &correct
			if correct {
				score++
			}
		}
		answers = append(answers, model.AttemptAnswer{
			QuestionID: a.QuestionID,
			OptionID:   a.OptionID,
			IsCorrect:  isCorrect,
		})
	}

	now, err := s.attemptRepo.ServerNow()
	if err != nil {
		log.Error().Err(err).Msg("Submit practice: failed to read server clock")
		return nil, fmt.Errorf("reading server clock: %w", err)
	}

	topicID := req.TopicID
	attempt := model.Attempt{
		UserID:      userID,
		TopicID:     &topicID,
		Mode:        model.ModePractice,
		Score:       score,
		StartedAt:   now,
		SubmittedAt: &now,
		Answers:     answers,
	}
	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Submit practice: failed to persist attempt")
		return nil, fmt.Errorf("creating practice attempt: %w", err)
	}

	total := len(answers)
	return &dto.PracticeResultDTO{
		OK:          true,
		AttemptID:   attempt.ID,
		Score:       score,
		Total:       total,
		AccuracyPct: accuracyPct(score, total),
	}, nil
}

func (s *practiceService) History(userID uint) (*dto.PracticeHistoryDTO, error) {
	rows, err := s.attemptRepo.FindPracticeByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Practice history: failed to load attempts")
		return nil, fmt.Errorf("loading practice history: %w", err)
	}

	topics, err := s.topicRepo.FindAllWithUnits()
	if err != nil {
		log.Error().Err(err).Msg("Practice history: failed to load topics")
		return nil, fmt.Errorf("loading topics: %w", err)
	}
	topicNames := make(map[uint]string, len(topics))
	for _, t := range topics {
		topicNames[t.ID] = t.Name
	}

	attempts := make([]dto.PracticeHistoryItemDTO, 0, len(rows))
	for _, row := range rows {
		item := dto.PracticeHistoryItemDTO{
			AttemptID:   row.ID,
			Score:       row.Score,
			Total:       row.TotalQuestions,
			AccuracyPct: accuracyPct(row.Score, row.TotalQuestions),
			StartedAt:   row.StartedAt,
		}
		if row.TopicID != nil {
			item.TopicName = topicNames[*row.TopicID]
		}
		attempts = append(attempts, item)
	}
	return &dto.PracticeHistoryDTO{OK: true, Attempts: attempts}, nil
}
