package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/paeslab/ensayo-api/internal/dto"
	"github.com/paeslab/ensayo-api/internal/model"
	"github.com/paeslab/ensayo-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const defaultExamTitle = "Ensayo"

// ExamSessionService creates exam attempts: fresh ones from a section
// request and retakes that clone the composition of a previous attempt.
type ExamSessionService interface {
	Start(userID uint, req dto.ExamStartDTO) (*dto.ExamStartedDTO, error)
	Retake(userID uint, attemptID string) (*dto.ExamStartedDTO, error)
}

type examSessionService struct {
	attemptRepo  repository.AttemptRepository
	answerRepo   repository.AttemptAnswerRepository
	questionRepo repository.QuestionRepository

	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

func NewExamSessionService(
	attemptRepo repository.AttemptRepository,
	answerRepo repository.AttemptAnswerRepository,
	questionRepo repository.QuestionRepository,
	rng *rand.Rand,
) ExamSessionService {
	return &examSessionService{
		attemptRepo:  attemptRepo,
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
		rng:          rng,
	}
}

type section struct {
	topicID uint
	count   int
}

func (s *examSessionService) Start(userID uint, req dto.ExamStartDTO) (*dto.ExamStartedDTO, error) {
	sections := make([]section, 0, len(req.Sections))
	for _, sec := range req.Sections {
		sections = append(sections, section{topicID: sec.TopicID, count: sec.Count})
	}

	title := defaultExamTitle
	if req.Title != nil && *req.Title != "" {
		title = *req.Title
	}

	return s.create(userID, title, req.TimeLimitSeconds, sections)
}

func (s *examSessionService) Retake(userID uint, attemptID string) (*dto.ExamStartedDTO, error) {
	base, err := s.attemptRepo.FindByIDForUser(attemptID, userID, model.ModeExam)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		log.Error().Err(err).Str("attemptID", attemptID).Msg("Retake: failed to load base attempt")
		return nil, fmt.Errorf("loading base attempt %s: %w", attemptID, err)
	}

	composition, err := s.answerRepo.TopicComposition(attemptID)
	if err != nil {
		log.Error().Err(err).Str("attemptID", attemptID).Msg("Retake: failed to load topic composition")
		return nil, fmt.Errorf("loading composition of attempt %s: %w", attemptID, err)
	}
	if len(composition) == 0 {
		return nil, ErrNoCompositionInferred
	}

	sections := make([]section, 0, len(composition))
	for _, tc := range composition {
		sections = append(sections, section{topicID: tc.TopicID, count: tc.Count})
	}

	title := defaultExamTitle
	if base.Title != nil && *base.Title != "" {
		title = *base.Title
	}
	title = fmt.Sprintf("%s (reintento)", title)

	return s.create(userID, title, base.TimeLimitSeconds, sections)
}

// create samples questions for the given sections and persists the attempt
// with its placeholder answers in one transaction.
func (s *examSessionService) create(userID uint, title string, timeLimitSeconds *int, sections []section) (*dto.ExamStartedDTO, error) {
	questionIDs, err := s.sample(sections)
	if err != nil {
		return nil, err
	}
	if len(questionIDs) == 0 {
		return nil, ErrNoQuestionsAvailable
	}

	startedAt, err := s.attemptRepo.ServerNow()
	if err != nil {
		log.Error().Err(err).Msg("create exam: failed to read server clock")
		return nil, fmt.Errorf("reading server clock: %w", err)
	}

	attempt := model.Attempt{
		UserID:           userID,
		Mode:             model.ModeExam,
		Title:            &title,
		Score:            0,
		StartedAt:        startedAt,
		TimeLimitSeconds: timeLimitSeconds,
	}
	for _, qid := range questionIDs {
		attempt.Answers = append(attempt.Answers, model.AttemptAnswer{QuestionID: qid})
	}

	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("create exam: failed to persist attempt")
		return nil, fmt.Errorf("creating attempt: %w", err)
	}

	log.Info().
		Str("attemptID", attempt.ID).
		Uint("userID", userID).
		Int("totalQuestions", len(questionIDs)).
		Msg("Exam attempt created")

	return &dto.ExamStartedDTO{
		OK:               true,
		AttemptID:        attempt.ID,
		Title:            title,
		TimeLimitSeconds: timeLimitSeconds,
		TotalQuestions:   len(questionIDs),
	}, nil
}

// sample draws count questions per section uniformly without replacement
// (shuffle-then-slice over the topic's ids), then deduplicates keeping the
// first occurrence so a question shared by two sections is counted once.
// A pool smaller than the requested count yields fewer questions, not an
// error.
func (s *examSessionService) sample(sections []section) ([]uint, error) {
	var picked []uint
	for _, sec := range sections {
		count := sec.count
		if count < 1 {
			count = 1
		}

		ids, err := s.questionRepo.FindIDsByTopic(sec.topicID)
		if err != nil {
			log.Error().Err(err).Uint("topicID", sec.topicID).Msg("sample: failed to load question ids")
			return nil, fmt.Errorf("loading questions of topic %d: %w", sec.topicID, err)
		}

		s.mu.Lock()
		s.rng.Shuffle(len(ids), func(i, j int) {
			ids[i], ids[j] = ids[j], ids[i]
		})
		s.mu.Unlock()

		if count > len(ids) {
			count = len(ids)
		}
		picked = append(picked, ids[:count]...)
	}

	seen := make(map[uint]bool, len(picked))
	deduped := picked[:0]
	for _, id := range picked {
		if seen[id] {
			continue
		}
		seen[id] = true
		deduped = append(deduped, id)
	}
	return deduped, nil
}
