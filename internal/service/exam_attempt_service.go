package service

import (
	"errors"
	"fmt"

	"github.com/paeslab/ensayo-api/internal/dto"
	"github.com/paeslab/ensayo-api/internal/model"
	"github.com/paeslab/ensayo-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ExamAttemptService mutates a running exam attempt: recording answers and
// sealing it with a final score.
type ExamAttemptService interface {
	Answer(userID uint, attemptID string, req dto.ExamAnswerDTO) (*dto.ExamAnswerAcceptedDTO, error)
	Finish(userID uint, attemptID string, req dto.ExamFinishDTO) (*dto.ExamFinishedDTO, error)
}

type examAttemptService struct {
	attemptRepo repository.AttemptRepository
	answerRepo  repository.AttemptAnswerRepository
	optionRepo  repository.OptionRepository
}

func NewExamAttemptService(
	attemptRepo repository.AttemptRepository,
	answerRepo repository.AttemptAnswerRepository,
	optionRepo repository.OptionRepository,
) ExamAttemptService {
	return &examAttemptService{
		attemptRepo: attemptRepo,
		answerRepo:  answerRepo,
		optionRepo:  optionRepo,
	}
}

// Answer validates ownership, question membership, seal state and expiry in
// that order, then overwrites the answer row. Repeating a question keeps the
// last write; a nil option clears the selection.
func (s *examAttemptService) Answer(userID uint, attemptID string, req dto.ExamAnswerDTO) (*dto.ExamAnswerAcceptedDTO, error) {
	attempt, err := s.loadOwned(attemptID, userID)
	if err != nil {
		return nil, err
	}

	belongs, err := s.answerRepo.Exists(attemptID, req.QuestionID)
	if err != nil {
		log.Error().Err(err).Str("attemptID", attemptID).Msg("Answer: placeholder lookup failed")
		return nil, fmt.Errorf("checking question %d of attempt %s: %w", req.QuestionID, attemptID, err)
	}
	if !belongs {
		return nil, ErrInvalidQuestion
	}

	if attempt.Sealed() {
		return nil, ErrAlreadySubmitted
	}

	serverNow, err := s.attemptRepo.ServerNow()
	if err != nil {
		log.Error().Err(err).Msg("Answer: failed to read server clock")
		return nil, fmt.Errorf("reading server clock: %w", err)
	}
	if attemptExpired(attempt, serverNow) {
		return nil, ErrAttemptExpired
	}

	var isCorrect *bool
	if req.OptionID != nil {
		option, err := s.optionRepo.FindForQuestion(*req.OptionID, req.QuestionID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Stale client state: an option that does not belong to the
			// question counts as incorrect rather than failing the call.
			incorrect := false
			isCorrect = &incorrect
		case err != nil:
			log.Error().Err(err).Uint("optionID", *req.OptionID).Msg("Answer: option lookup failed")
			return nil, fmt.Errorf("resolving option %d: %w", *req.OptionID, err)
		default:
			correct := option.IsCorrect
			isCorrect = &correct
		}
	}

	if err := s.answerRepo.UpdateSelection(attemptID, req.QuestionID, req.OptionID, isCorrect); err != nil {
		log.Error().Err(err).Str("attemptID", attemptID).Uint("questionID", req.QuestionID).Msg("Answer: update failed")
		return nil, fmt.Errorf("saving answer: %w", err)
	}

	return &dto.ExamAnswerAcceptedDTO{
		OK:         true,
		QuestionID: req.QuestionID,
		OptionID:   req.OptionID,
	}, nil
}

// Finish recounts the correct rows server-side and seals the attempt. An
// expired attempt can still be finished; a sealed one cannot be finished
// again. The client-reported duration is stored verbatim when present.
func (s *examAttemptService) Finish(userID uint, attemptID string, req dto.ExamFinishDTO) (*dto.ExamFinishedDTO, error) {
	attempt, err := s.loadOwned(attemptID, userID)
	if err != nil {
		return nil, err
	}
	if attempt.Sealed() {
		return nil, ErrAlreadySubmitted
	}

	total, err := s.answerRepo.Count(attemptID)
	if err != nil {
		log.Error().Err(err).Str("attemptID", attemptID).Msg("Finish: counting answers failed")
		return nil, fmt.Errorf("counting answers of attempt %s: %w", attemptID, err)
	}
	correct, err := s.answerRepo.CountCorrect(attemptID)
	if err != nil {
		log.Error().Err(err).Str("attemptID", attemptID).Msg("Finish: counting correct answers failed")
		return nil, fmt.Errorf("scoring attempt %s: %w", attemptID, err)
	}

	submittedAt, err := s.attemptRepo.ServerNow()
	if err != nil {
		log.Error().Err(err).Msg("Finish: failed to read server clock")
		return nil, fmt.Errorf("reading server clock: %w", err)
	}

	score := int(correct)
	if err := s.attemptRepo.Seal(attemptID, score, submittedAt, req.DurationSeconds); err != nil {
		log.Error().Err(err).Str("attemptID", attemptID).Msg("Finish: sealing attempt failed")
		return nil, fmt.Errorf("sealing attempt %s: %w", attemptID, err)
	}

	log.Info().
		Str("attemptID", attemptID).
		Int("score", score).
		Int64("total", total).
		Msg("Exam attempt sealed")

	return &dto.ExamFinishedDTO{
		OK:          true,
		AttemptID:   attemptID,
		Score:       score,
		Total:       int(total),
		AccuracyPct: accuracyPct(score, int(total)),
	}, nil
}

func (s *examAttemptService) loadOwned(attemptID string, userID uint) (*model.Attempt, error) {
	attempt, err := s.attemptRepo.FindByIDForUser(attemptID, userID, model.ModeExam)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		log.Error().Err(err).Str("attemptID", attemptID).Msg("failed to load attempt")
		return nil, fmt.Errorf("loading attempt %s: %w", attemptID, err)
	}
	return attempt, nil
}
