package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/paeslab/ensayo-api/internal/model"
	"github.com/paeslab/ensayo-api/internal/repository"
	"gorm.io/gorm"
)

// fakeStore is the shared in-memory state behind the fake repositories, so
// a service under test sees consistent data across all of them. The clock
// is a plain field: tests move it to simulate the database's NOW().
type fakeStore struct {
	now       time.Time
	attempts  map[string]*model.Attempt
	answers   map[string][]*model.AttemptAnswer
	questions map[uint]*model.Question
	topics    map[uint]*model.Topic
	units     map[uint]*model.Unit
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		now:       time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
		attempts:  make(map[string]*model.Attempt),
		answers:   make(map[string][]*model.AttemptAnswer),
		questions: make(map[uint]*model.Question),
		topics:    make(map[uint]*model.Topic),
		units:     make(map[uint]*model.Unit),
	}
}

func (s *fakeStore) advance(d time.Duration) {
	s.now = s.now.Add(d)
}

// addQuestions seeds count questions for a topic starting at firstID. Each
// question gets options A (correct) and B (incorrect) with option ids
// firstID*10+1 and firstID*10+2 and so on.
func (s *fakeStore) addQuestions(topicID, firstID uint, count int) []uint {
	ids := make([]uint, 0, count)
	for i := 0; i < count; i++ {
		qid := firstID + uint(i)
		s.questions[qid] = &model.Question{
			ID:      qid,
			TopicID: topicID,
			Stem:    "stem",
			Options: []model.Option{
				{ID: qid*10 + 1, QuestionID: qid, Label: "A", Text: "right", IsCorrect: true},
				{ID: qid*10 + 2, QuestionID: qid, Label: "B", Text: "wrong", IsCorrect: false},
			},
		}
		ids = append(ids, qid)
	}
	return ids
}

// addAttempt seeds a running exam attempt with placeholder rows for the
// given questions, mirroring what session start persists.
func (s *fakeStore) addAttempt(id string, userID uint, questionIDs []uint) *model.Attempt {
	attempt := &model.Attempt{
		ID:        id,
		UserID:    userID,
		Mode:      model.ModeExam,
		StartedAt: s.now,
	}
	s.attempts[id] = attempt
	for _, qid := range questionIDs {
		s.answers[id] = append(s.answers[id], &model.AttemptAnswer{AttemptID: id, QuestionID: qid})
	}
	return attempt
}

// --- AttemptRepository ---

type fakeAttemptRepo struct{ store *fakeStore }

var _ repository.AttemptRepository = (*fakeAttemptRepo)(nil)

func (r *fakeAttemptRepo) Create(attempt *model.Attempt) error {
	if attempt.ID == "" {
		attempt.ID = uuid.NewString()
	}
	stored := *attempt
	stored.Answers = nil
	r.store.attempts[attempt.ID] = &stored
	for _, a := range attempt.Answers {
		row := a
		row.AttemptID = attempt.ID
		r.store.answers[attempt.ID] = append(r.store.answers[attempt.ID], &row)
	}
	return nil
}

func (r *fakeAttemptRepo) FindByIDForUser(id string, userID uint, mode string) (*model.Attempt, error) {
	attempt, ok := r.store.attempts[id]
	if !ok || attempt.UserID != userID || attempt.Mode != mode {
		return nil, gorm.ErrRecordNotFound
	}
	found := *attempt
	return &found, nil
}

func (r *fakeAttemptRepo) Seal(id string, score int, submittedAt time.Time, durationSeconds *int) error {
	attempt, ok := r.store.attempts[id]
	if !ok {
		return nil
	}
	attempt.Score = score
	sealedAt := submittedAt
	attempt.SubmittedAt = &sealedAt
	if durationSeconds != nil {
		d := *durationSeconds
		attempt.DurationSeconds = &d
	}
	return nil
}

func (r *fakeAttemptRepo) FindActiveByUser(userID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	for _, a := range r.store.attempts {
		if a.UserID == userID && a.Mode == model.ModeExam && a.SubmittedAt == nil {
			attempts = append(attempts, *a)
		}
	}
	sort.Slice(attempts, func(i, j int) bool {
		return attempts[i].StartedAt.After(attempts[j].StartedAt)
	})
	return attempts, nil
}

func (r *fakeAttemptRepo) CountSealedByUser(userID uint) (int64, error) {
	var total int64
	for _, a := range r.store.attempts {
		if a.UserID == userID && a.Mode == model.ModeExam && a.SubmittedAt != nil {
			total++
		}
	}
	return total, nil
}

func (r *fakeAttemptRepo) FindHistoryPage(userID uint, limit, offset int) ([]repository.HistoryRow, error) {
	var rows []repository.HistoryRow
	for _, a := range r.store.attempts {
		if a.UserID == userID && a.Mode == model.ModeExam && a.SubmittedAt != nil {
			rows = append(rows, repository.HistoryRow{
				Attempt:        *a,
				TotalQuestions: len(r.store.answers[a.ID]),
			})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].SubmittedAt.Equal(*rows[j].SubmittedAt) {
			return rows[i].SubmittedAt.After(*rows[j].SubmittedAt)
		}
		return rows[i].ID > rows[j].ID
	})
	if offset >= len(rows) {
		return nil, nil
	}
	rows = rows[offset:]
	if limit < len(rows) {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r *fakeAttemptRepo) FindPracticeByUser(userID uint) ([]repository.HistoryRow, error) {
	var rows []repository.HistoryRow
	for _, a := range r.store.attempts {
		if a.UserID == userID && a.Mode == model.ModePractice {
			rows = append(rows, repository.HistoryRow{
				Attempt:        *a,
				TotalQuestions: len(r.store.answers[a.ID]),
			})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].StartedAt.After(rows[j].StartedAt)
	})
	return rows, nil
}

func (r *fakeAttemptRepo) ServerNow() (time.Time, error) {
	return r.store.now, nil
}

// --- AttemptAnswerRepository ---

type fakeAnswerRepo struct{ store *fakeStore }

var _ repository.AttemptAnswerRepository = (*fakeAnswerRepo)(nil)

func (r *fakeAnswerRepo) sorted(attemptID string) []*model.AttemptAnswer {
	rows := append([]*model.AttemptAnswer(nil), r.store.answers[attemptID]...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].QuestionID < rows[j].QuestionID })
	return rows
}

func (r *fakeAnswerRepo) FindByAttempt(attemptID string) ([]model.AttemptAnswer, error) {
	var answers []model.AttemptAnswer
	for _, row := range r.sorted(attemptID) {
		answers = append(answers, *row)
	}
	return answers, nil
}

func (r *fakeAnswerRepo) FindByAttemptWithQuestions(attemptID string) ([]model.AttemptAnswer, error) {
	var answers []model.AttemptAnswer
	for _, row := range r.sorted(attemptID) {
		a := *row
		if q, ok := r.store.questions[a.QuestionID]; ok {
			a.Question = *q
		}
		answers = append(answers, a)
	}
	return answers, nil
}

func (r *fakeAnswerRepo) Exists(attemptID string, questionID uint) (bool, error) {
	for _, row := range r.store.answers[attemptID] {
		if row.QuestionID == questionID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAnswerRepo) UpdateSelection(attemptID string, questionID uint, optionID *uint, isCorrect *bool) error {
	for _, row := range r.store.answers[attemptID] {
		if row.QuestionID == questionID {
			row.OptionID = optionID
			row.IsCorrect = isCorrect
		}
	}
	return nil
}

func (r *fakeAnswerRepo) Count(attemptID string) (int64, error) {
	return int64(len(r.store.answers[attemptID])), nil
}

func (r *fakeAnswerRepo) CountCorrect(attemptID string) (int64, error) {
	var count int64
	for _, row := range r.store.answers[attemptID] {
		if row.IsCorrect != nil && *row.IsCorrect {
			count++
		}
	}
	return count, nil
}

func (r *fakeAnswerRepo) TopicComposition(attemptID string) ([]repository.TopicCount, error) {
	counts := make(map[uint]int)
	for _, row := range r.store.answers[attemptID] {
		if q, ok := r.store.questions[row.QuestionID]; ok {
			counts[q.TopicID]++
		}
	}
	topicIDs := make([]uint, 0, len(counts))
	for id := range counts {
		topicIDs = append(topicIDs, id)
	}
	sort.Slice(topicIDs, func(i, j int) bool { return topicIDs[i] < topicIDs[j] })
	var rows []repository.TopicCount
	for _, id := range topicIDs {
		rows = append(rows, repository.TopicCount{TopicID: id, Count: counts[id]})
	}
	return rows, nil
}

// --- QuestionRepository ---

type fakeQuestionRepo struct{ store *fakeStore }

var _ repository.QuestionRepository = (*fakeQuestionRepo)(nil)

func (r *fakeQuestionRepo) FindIDsByTopic(topicID uint) ([]uint, error) {
	var ids []uint
	for id, q := range r.store.questions {
		if q.TopicID == topicID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *fakeQuestionRepo) FindByIDs(ids []uint) ([]model.Question, error) {
	return r.byIDs(ids), nil
}

func (r *fakeQuestionRepo) FindByIDsWithOptions(ids []uint) ([]model.Question, error) {
	return r.byIDs(ids), nil
}

func (r *fakeQuestionRepo) byIDs(ids []uint) []model.Question {
	sorted := append([]uint(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	var questions []model.Question
	for _, id := range sorted {
		if q, ok := r.store.questions[id]; ok {
			questions = append(questions, *q)
		}
	}
	return questions
}

func (r *fakeQuestionRepo) FindByTopicWithOptions(topicID uint) ([]model.Question, error) {
	ids, _ := r.FindIDsByTopic(topicID)
	return r.byIDs(ids), nil
}

// --- OptionRepository ---

type fakeOptionRepo struct{ store *fakeStore }

var _ repository.OptionRepository = (*fakeOptionRepo)(nil)

func (r *fakeOptionRepo) FindForQuestion(optionID, questionID uint) (*model.Option, error) {
	q, ok := r.store.questions[questionID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for _, o := range q.Options {
		if o.ID == optionID {
			option := o
			return &option, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeOptionRepo) CorrectnessByIDs(optionIDs []uint) (map[uint]bool, error) {
	correctness := make(map[uint]bool, len(optionIDs))
	for _, id := range optionIDs {
		for _, q := range r.store.questions {
			for _, o := range q.Options {
				if o.ID == id {
					correctness[id] = o.IsCorrect
				}
			}
		}
	}
	return correctness, nil
}

// --- TopicRepository ---

type fakeTopicRepo struct{ store *fakeStore }

var _ repository.TopicRepository = (*fakeTopicRepo)(nil)

func (r *fakeTopicRepo) FindAllWithUnits() ([]repository.TopicWithUnit, error) {
	ids := make([]uint, 0, len(r.store.topics))
	for id := range r.store.topics {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var rows []repository.TopicWithUnit
	for _, id := range ids {
		t := r.store.topics[id]
		row := repository.TopicWithUnit{Topic: *t}
		if u, ok := r.store.units[t.UnitID]; ok {
			row.UnitName = u.Name
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (r *fakeTopicRepo) FindByID(id uint) (*model.Topic, error) {
	t, ok := r.store.topics[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	topic := *t
	return &topic, nil
}
