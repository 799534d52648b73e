package repository

import (
	"time"

	"github.com/paeslab/ensayo-api/internal/model"
	"gorm.io/gorm"
)

// HistoryRow is an attempt joined with its question count for listings.
type HistoryRow struct {
	model.Attempt
	TotalQuestions int
}

type AttemptRepository interface {
	Create(attempt *model.Attempt) error
	FindByIDForUser(id string, userID uint, mode string) (*model.Attempt, error)
	Seal(id string, score int, submittedAt time.Time, durationSeconds *int) error
	FindActiveByUser(userID uint) ([]model.Attempt, error)
	CountSealedByUser(userID uint) (int64, error)
	FindHistoryPage(userID uint, limit, offset int) ([]HistoryRow, error)
	FindPracticeByUser(userID uint) ([]HistoryRow, error)
	ServerNow() (time.Time, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.Attempt) error {
	// GORM creates the associated AttemptAnswers in the same transaction as
	// the attempt row, so a failed insert leaves no orphaned attempt.
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) FindByIDForUser(id string, userID uint, mode string) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.
		Where("id = ? AND user_id = ? AND mode = ?", id, userID, mode).
		First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) Seal(id string, score int, submittedAt time.Time, durationSeconds *int) error {
	updates := map[string]interface{}{
		"score":        score,
		"submitted_at": submittedAt,
	}
	// Client-reported duration is stored as-is when present and left
	// untouched otherwise; started_at/submitted_at stay the authoritative
	// timestamps.
	if durationSeconds != nil {
		updates["duration_seconds"] = *durationSeconds
	}
	return r.db.Model(&model.Attempt{}).Where("id = ?", id).Updates(updates).Error
}

func (r *attemptRepository) FindActiveByUser(userID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.
		Where("user_id = ? AND mode = ? AND submitted_at IS NULL", userID, model.ModeExam).
		Order("started_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) CountSealedByUser(userID uint) (int64, error) {
	var total int64
	err := r.db.Model(&model.Attempt{}).
		Where("user_id = ? AND mode = ? AND submitted_at IS NOT NULL", userID, model.ModeExam).
		Count(&total).Error
	return total, err
}

func (r *attemptRepository) FindHistoryPage(userID uint, limit, offset int) ([]HistoryRow, error) {
	var rows []HistoryRow
	err := r.db.Model(&model.Attempt{}).
		Select("attempts.*, (SELECT COUNT(*) FROM attempt_answers aa WHERE aa.attempt_id = attempts.id) AS total_questions").
		Where("attempts.user_id = ? AND attempts.mode = ? AND attempts.submitted_at IS NOT NULL", userID, model.ModeExam).
		Order("attempts.submitted_at DESC, attempts.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	return rows, err
}

func (r *attemptRepository) FindPracticeByUser(userID uint) ([]HistoryRow, error) {
	var rows []HistoryRow
	err := r.db.Model(&model.Attempt{}).
		Select("attempts.*, (SELECT COUNT(*) FROM attempt_answers aa WHERE aa.attempt_id = attempts.id) AS total_questions").
		Where("attempts.user_id = ? AND attempts.mode = ?", userID, model.ModePractice).
		Order("attempts.started_at DESC").
		Scan(&rows).Error
	return rows, err
}

// ServerNow reads the database clock. Every elapsed-time decision uses this
// timestamp, never the application host's, so countdowns cannot drift
// between tiers.
func (r *attemptRepository) ServerNow() (time.Time, error) {
	var now time.Time
	err := r.db.Raw("SELECT NOW()").Scan(&now).Error
	return now, err
}
