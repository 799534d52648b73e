package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/paeslab/ensayo-api/internal/dto"
	"github.com/paeslab/ensayo-api/internal/model"
	"github.com/paeslab/ensayo-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	historyDefaultPageSize = 10
	historyMaxPageSize     = 100
)

// ExamQueryService is the read-only side of the engine: the countdown
// progress view, the post-exam review, and the active/history listings.
// Nothing here mutates state; expiry is reported, never enforced.
type ExamQueryService interface {
	Progress(userID uint, attemptID string) (*dto.ExamProgressDTO, error)
	Result(userID uint, attemptID string) (*dto.ExamReviewDTO, error)
	Detail(userID uint, attemptID string) (*dto.ExamReviewDTO, error)
	Active(userID uint) (*dto.ActiveExamsDTO, error)
	History(userID uint, limit, offset int) (*dto.ExamHistoryDTO, error)
}

type examQueryService struct {
	attemptRepo  repository.AttemptRepository
	answerRepo   repository.AttemptAnswerRepository
	questionRepo repository.QuestionRepository
}

func NewExamQueryService(
	attemptRepo repository.AttemptRepository,
	answerRepo repository.AttemptAnswerRepository,
	questionRepo repository.QuestionRepository,
) ExamQueryService {
	return &examQueryService{
		attemptRepo:  attemptRepo,
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
	}
}

// Progress returns the running attempt with its questions and current
// selections (answer key withheld), plus the server clock so clients can
// render a drift-corrected countdown.
func (s *examQueryService) Progress(userID uint, attemptID string) (*dto.ExamProgressDTO, error) {
	attempt, err := s.loadOwned(attemptID, userID)
	if err != nil {
		return nil, err
	}

	serverNow, err := s.attemptRepo.ServerNow()
	if err != nil {
		log.Error().Err(err).Msg("Progress: failed to read server clock")
		return nil, fmt.Errorf("reading server clock: %w", err)
	}

	answers, err := s.answerRepo.FindByAttempt(attemptID)
	if err != nil {
		log.Error().Err(err).Str("attemptID", attemptID).Msg("Progress: failed to load answers")
		return nil, fmt.Errorf("loading answers of attempt %s: %w", attemptID, err)
	}

	selected := make(map[uint]*uint, len(answers))
	answered := 0
	questionIDs := make([]uint, 0, len(answers))
	for _, a := range answers {
		questionIDs = append(questionIDs, a.QuestionID)
		selected[a.QuestionID] = a.OptionID
		if a.OptionID != nil {
			answered++
		}
	}

	questions, err := s.questionRepo.FindByIDsWithOptions(questionIDs)
	if err != nil {
		log.Error().Err(err).Str("attemptID", attemptID).Msg("Progress: failed to load questions")
		return nil, fmt.Errorf("loading questions of attempt %s: %w", attemptID, err)
	}

	items := make([]dto.ProgressItemDTO, 0, len(questions))
	for _, q := range questions {
		var options []dto.ProgressOptionDTO
		if err := copier.Copy(&options, &q.Options); err != nil {
			log.Error().Err(err).Uint("questionID", q.ID).Msg("Progress: failed to copy options")
			return nil, fmt.Errorf("preparing options of question %d: %w", q.ID, err)
		}
		items = append(items, dto.ProgressItemDTO{
			QuestionID:       q.ID,
			Stem:             q.Stem,
			Options:          options,
			SelectedOptionID: selected[q.ID],
		})
	}

	return &dto.ExamProgressDTO{
		OK: true,
		Attempt: dto.AttemptMetaDTO{
			ID:               attempt.ID,
			Title:            attempt.Title,
			TimeLimitSeconds: attempt.TimeLimitSeconds,
			StartedAt:        attempt.StartedAt,
			SubmittedAt:      attempt.SubmittedAt,
		},
		Items:          items,
		Answered:       answered,
		Total:          len(items),
		ServerNow:      serverNow,
		ElapsedSeconds: elapsedSeconds(attempt, serverNow),
		Expired:        attemptExpired(attempt, serverNow),
	}, nil
}

// Result is the sealed summary plus full review items.
func (s *examQueryService) Result(userID uint, attemptID string) (*dto.ExamReviewDTO, error) {
	return s.review(userID, attemptID)
}

// Detail is the per-question review; same payload as Result, kept as its
// own endpoint for the review page.
func (s *examQueryService) Detail(userID uint, attemptID string) (*dto.ExamReviewDTO, error) {
	return s.review(userID, attemptID)
}

func (s *examQueryService) review(userID uint, attemptID string) (*dto.ExamReviewDTO, error) {
	attempt, err := s.loadOwned(attemptID, userID)
	if err != nil {
		return nil, err
	}

	answers, err := s.answerRepo.FindByAttemptWithQuestions(attemptID)
	if err != nil {
		log.Error().Err(err).Str("attemptID", attemptID).Msg("review: failed to load answers")
		return nil, fmt.Errorf("loading answers of attempt %s: %w", attemptID, err)
	}

	questionIDs := make([]uint, 0, len(answers))
	for _, a := range answers {
		questionIDs = append(questionIDs, a.QuestionID)
	}
	questions, err := s.questionRepo.FindByIDsWithOptions(questionIDs)
	if err != nil {
		log.Error().Err(err).Str("attemptID", attemptID).Msg("review: failed to load question options")
		return nil, fmt.Errorf("loading questions of attempt %s: %w", attemptID, err)
	}
	optionsByQuestion := make(map[uint][]model.Option, len(questions))
	for _, q := range questions {
		optionsByQuestion[q.ID] = q.Options
	}

	items := make([]dto.ReviewItemDTO, 0, len(answers))
	for _, a := range answers {
		item := dto.ReviewItemDTO{
			QuestionID:       a.QuestionID,
			Stem:             a.Question.Stem,
			Explanation:      a.Question.Explanation,
			SelectedOptionID: a.OptionID,
			IsCorrect:        a.IsCorrect,
		}
		for _, o := range optionsByQuestion[a.QuestionID] {
			item.Options = append(item.Options, dto.ReviewOptionDTO{
				ID:         o.ID,
				Label:      o.Label,
				Text:       o.Text,
				IsCorrect:  o.IsCorrect,
				IsSelected: a.OptionID != nil && *a.OptionID == o.ID,
			})
		}
		items = append(items, item)
	}

	total := len(items)
	return &dto.ExamReviewDTO{
		OK: true,
		Attempt: dto.ExamResultMetaDTO{
			ID:               attempt.ID,
			Title:            attempt.Title,
			Score:            attempt.Score,
			StartedAt:        attempt.StartedAt,
			SubmittedAt:      attempt.SubmittedAt,
			DurationSeconds:  attempt.DurationSeconds,
			TimeLimitSeconds: attempt.TimeLimitSeconds,
			Total:            total,
			AccuracyPct:      accuracyPct(attempt.Score, total),
		},
		Items: items,
	}, nil
}

func (s *examQueryService) Active(userID uint) (*dto.ActiveExamsDTO, error) {
	attempts, err := s.attemptRepo.FindActiveByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Active: failed to load attempts")
		return nil, fmt.Errorf("loading active attempts: %w", err)
	}

	active := make([]dto.ActiveExamDTO, 0, len(attempts))
	for _, a := range attempts {
		active = append(active, dto.ActiveExamDTO{
			ID:               a.ID,
			Title:            a.Title,
			StartedAt:        a.StartedAt,
			TimeLimitSeconds: a.TimeLimitSeconds,
		})
	}
	return &dto.ActiveExamsDTO{OK: true, Active: active}, nil
}

func (s *examQueryService) History(userID uint, limit, offset int) (*dto.ExamHistoryDTO, error) {
	if limit < 1 {
		limit = historyDefaultPageSize
	}
	if limit > historyMaxPageSize {
		limit = historyMaxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	total, err := s.attemptRepo.CountSealedByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("History: failed to count attempts")
		return nil, fmt.Errorf("counting sealed attempts: %w", err)
	}

	rows, err := s.attemptRepo.FindHistoryPage(userID, limit, offset)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("History: failed to load page")
		return nil, fmt.Errorf("loading history page: %w", err)
	}

	exams := make([]dto.ExamHistoryItemDTO, 0, len(rows))
	for _, row := range rows {
		exams = append(exams, dto.ExamHistoryItemDTO{
			AttemptID:        row.ID,
			Title:            row.Title,
			Score:            row.Score,
			StartedAt:        row.StartedAt,
			SubmittedAt:      row.SubmittedAt,
			DurationSeconds:  row.DurationSeconds,
			TimeLimitSeconds: row.TimeLimitSeconds,
			TotalQuestions:   row.TotalQuestions,
			AccuracyPct:      accuracyPct(row.Score, row.TotalQuestions),
		})
	}

	return &dto.ExamHistoryDTO{
		OK:         true,
		Exams:      exams,
		TotalExams: total,
		Page:       offset/limit + 1,
		PageSize:   limit,
		HasMore:    int64(offset+limit) < total,
	}, nil
}

func (s *examQueryService) loadOwned(attemptID string, userID uint) (*model.Attempt, error) {
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
