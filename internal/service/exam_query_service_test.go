package service

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func newQueryService(store *fakeStore) ExamQueryService {
	return NewExamQueryService(
		&fakeAttemptRepo{store: store},
		&fakeAnswerRepo{store: store},
		&fakeQuestionRepo{store: store},
	)
}

func TestProgressReportsSelectionsAndClock(t *testing.T) {
	store := newFakeStore()
	qids := store.addQuestions(1, 100, 3)
	store.addAttempt("att-1", 7, qids)
	store.attempts["att-1"].TimeLimitSeconds = intPtr(600)
	answerRow(store, "att-1", 100).OptionID = uintPtr(1001)
	answerRow(store, "att-1", 100).IsCorrect = boolPtr(true)

	store.advance(90 * time.Second)
	progress, err := newQueryService(store).Progress(7, "att-1")
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}

	if progress.Total != 3 || progress.Answered != 1 {
		t.Errorf("answered/total = %d/%d, want 1/3", progress.Answered, progress.Total)
	}
	if !progress.ServerNow.Equal(store.now) {
		t.Errorf("ServerNow = %v, want %v", progress.ServerNow, store.now)
	}
	if progress.ElapsedSeconds != 90 {
		t.Errorf("ElapsedSeconds = %d, want 90", progress.ElapsedSeconds)
	}
	if progress.Expired {
		t.Error("Expired = true before the limit")
	}

	if len(progress.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(progress.Items))
	}
	first := progress.Items[0]
	if first.QuestionID != 100 {
		t.Errorf("first item = question %d, want 100 (question_id order)", first.QuestionID)
	}
	if first.SelectedOptionID == nil || *first.SelectedOptionID != 1001 {
		t.Errorf("SelectedOptionID = %v, want 1001", first.SelectedOptionID)
	}
	if progress.Items[1].SelectedOptionID != nil {
		t.Error("unanswered question must carry a nil selection")
	}
	if len(first.Options) != 2 {
		t.Errorf("len(Options) = %d, want 2", len(first.Options))
	}
}

func TestProgressFlagsExpiry(t *testing.T) {
	store := newFakeStore()
	qids := store.addQuestions(1, 100, 2)
	store.addAttempt("att-1", 7, qids)
	store.attempts["att-1"].TimeLimitSeconds = intPtr(600)

	store.advance(601 * time.Second)
	progress, err := newQueryService(store).Progress(7, "att-1")
	if err != nil {
		t.Fatalf("Progress must not fail on expiry: %v", err)
	}
	if !progress.Expired {
		t.Error("Expired = false past the limit")
	}
	if progress.ElapsedSeconds != 601 {
		t.Errorf("ElapsedSeconds = %d, want 601", progress.ElapsedSeconds)
	}
}

func TestProgressUnknownAttempt(t *testing.T) {
	store := newFakeStore()
	if _, err := newQueryService(store).Progress(7, "missing"); !errors.Is(err, ErrAttemptNotFound) {
		t.Fatalf("err = %v, want ErrAttemptNotFound", err)
	}
}

func TestResultIncludesAnswerKey(t *testing.T) {
	store := newFakeStore()
	qids := store.addQuestions(1, 100, 2)
	store.addAttempt("att-1", 7, qids)
	answerRow(store, "att-1", 100).OptionID = uintPtr(1001)
	answerRow(store, "att-1", 100).IsCorrect = boolPtr(true)
	sealed := store.now.Add(5 * time.Minute)
	store.attempts["att-1"].Score = 1
	store.attempts["att-1"].SubmittedAt = &sealed

	result, err := newQueryService(store).Result(7, "att-1")
	if err != nil {
		t.Fatalf("Result: %v", err)
	}

	if result.Attempt.Score != 1 || result.Attempt.Total != 2 {
		t.Errorf("score/total = %d/%d, want 1/2", result.Attempt.Score, result.Attempt.Total)
	}
	if result.Attempt.AccuracyPct != 50.0 {
		t.Errorf("AccuracyPct = %v, want 50.0", result.Attempt.AccuracyPct)
	}

	first := result.Items[0]
	if first.IsCorrect == nil || !*first.IsCorrect {
		t.Errorf("first item IsCorrect = %v, want true", first.IsCorrect)
	}
	var sawCorrect, sawSelected bool
	for _, o := range first.Options {
		if o.IsCorrect {
			sawCorrect = true
		}
		if o.IsSelected {
			sawSelected = true
			if o.ID != 1001 {
				t.Errorf("selected option = %d, want 1001", o.ID)
			}
		}
	}
	if !sawCorrect || !sawSelected {
		t.Error("review options must expose both correctness and selection flags")
	}

	second := result.Items[1]
	if second.IsCorrect != nil || second.SelectedOptionID != nil {
		t.Errorf("unanswered item = %+v, want nil selection and correctness", second)
	}
}

func TestDetailMatchesResult(t *testing.T) {
	store := newFakeStore()
	qids := store.addQuestions(1, 100, 2)
	store.addAttempt("att-1", 7, qids)
	svc := newQueryService(store)

	result, err := svc.Result(7, "att-1")
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	detail, err := svc.Detail(7, "att-1")
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if fmt.Sprintf("%+v", result) != fmt.Sprintf("%+v", detail) {
		t.Error("Detail and Result must return the same payload")
	}
}

func TestActiveListsOnlyRunningAttempts(t *testing.T) {
	store := newFakeStore()
	qids := store.addQuestions(1, 100, 2)

	store.addAttempt("running-old", 7, qids)
	store.advance(time.Minute)
	store.addAttempt("running-new", 7, qids)
	sealedAttempt := store.addAttempt("sealed", 7, qids)
	sealed := store.now
	sealedAttempt.SubmittedAt = &sealed
	store.addAttempt("other-user", 8, qids)

	active, err := newQueryService(store).Active(7)
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if len(active.Active) != 2 {
		t.Fatalf("len(Active) = %d, want 2", len(active.Active))
	}
	if active.Active[0].ID != "running-new" || active.Active[1].ID != "running-old" {
		t.Errorf("order = [%s %s], want newest first", active.Active[0].ID, active.Active[1].ID)
	}
}

func seedHistory(store *fakeStore, userID uint, count int) {
	qids := store.addQuestions(1, 100, 2)
	for i := 0; i < count; i++ {
		id := fmt.Sprintf("hist-%03d", i)
		attempt := store.addAttempt(id, userID, qids)
		sealed := store.now.Add(time.Duration(i) * time.Minute)
		attempt.SubmittedAt = &sealed
		attempt.Score = 1
	}
}

func TestHistoryPagination(t *testing.T) {
	store := newFakeStore()
	seedHistory(store, 7, 25)
	svc := newQueryService(store)

	first, err := svc.History(7, 10, 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(first.Exams) != 10 || first.Page != 1 || first.PageSize != 10 {
		t.Errorf("page 1 = %d rows, page %d, size %d", len(first.Exams), first.Page, first.PageSize)
	}
	if first.TotalExams != 25 || !first.HasMore {
		t.Errorf("TotalExams/HasMore = %d/%v, want 25/true", first.TotalExams, first.HasMore)
	}
	// Most recently submitted first.
	if first.Exams[0].AttemptID != "hist-024" {
		t.Errorf("first row = %s, want hist-024", first.Exams[0].AttemptID)
	}

	last, err := svc.History(7, 10, 20)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(last.Exams) != 5 || last.Page != 3 || last.HasMore {
		t.Errorf("last page = %d rows, page %d, hasMore %v, want 5/3/false", len(last.Exams), last.Page, last.HasMore)
	}
}

func TestHistoryClampsLimits(t *testing.T) {
	store := newFakeStore()
	seedHistory(store, 7, 3)
	svc := newQueryService(store)

	defaulted, err := svc.History(7, 0, 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if defaulted.PageSize != 10 {
		t.Errorf("PageSize = %d, want default 10 for limit 0", defaulted.PageSize)
	}

	capped, err := svc.History(7, 1000, 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if capped.PageSize != 100 {
		t.Errorf("PageSize = %d, want cap 100", capped.PageSize)
	}

	negative, err := svc.History(7, 10, -5)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if negative.Page != 1 {
		t.Errorf("Page = %d, want 1 for a negative offset", negative.Page)
	}
}

func TestHistoryCarriesAccuracy(t *testing.T) {
	store := newFakeStore()
	seedHistory(store, 7, 1)

	history, err := newQueryService(store).History(7, 10, 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	row := history.Exams[0]
	if row.TotalQuestions != 2 || row.AccuracyPct != 50.0 {
		t.Errorf("row = total %d accuracy %v, want 2 and 50.0", row.TotalQuestions, row.AccuracyPct)
	}
}
